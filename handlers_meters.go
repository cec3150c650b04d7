package main

import (
	"net/http"

	"meterpay/models"
	"meterpay/pkg/validate"

	"github.com/gin-gonic/gin"
)

// createMeterHandler registers a meter under the authenticated user.
func createMeterHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		MeterNumber  string `json:"meterNumber" binding:"required"`
		Nickname     string `json:"nickname"`
		Address      string `json:"address"`
		CustomerName string `json:"customerName"`
		Type         string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.MeterNumber(req.MeterNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var existing models.Meter
	if err := db.Where("user_id = ? AND meter_number = ?", user.ID, req.MeterNumber).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "meter already registered"})
		return
	}
	meter := models.Meter{
		UserID:       user.ID,
		MeterNumber:  req.MeterNumber,
		Nickname:     req.Nickname,
		Address:      req.Address,
		CustomerName: req.CustomerName,
		Type:         req.Type,
		Status:       models.MeterStatusActive,
	}
	if meter.Type == "" {
		meter.Type = "STS"
	}
	if err := db.Create(&meter).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "meter already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": meter.ID})
}

func listMetersHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var meters []models.Meter
	if err := db.Where("user_id = ?", user.ID).Order("id asc").Find(&meters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, meters)
}

func getMeterHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var meter models.Meter
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&meter).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meter not found"})
		return
	}
	c.JSON(http.StatusOK, meter)
}

// updateMeterHandler edits nickname/address/customer name/status. Meter
// number and ownership never change; meters are never deleted.
func updateMeterHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var meter models.Meter
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&meter).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meter not found"})
		return
	}
	var req struct {
		Nickname     *string `json:"nickname"`
		Address      *string `json:"address"`
		CustomerName *string `json:"customerName"`
		Status       *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]any{}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Status != nil {
		if *req.Status != models.MeterStatusActive && *req.Status != models.MeterStatusInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
			return
		}
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err := db.Model(&meter).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, meter)
}
