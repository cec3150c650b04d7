package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"meterpay/models"
	"meterpay/pkg/schedule"

	"github.com/gin-gonic/gin"
)

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// scheduleBody is the wire shape of a schedule definition, matching the
// client's {type, time, days, date, nextTriggerDate} object.
type scheduleBody struct {
	Type            string `json:"type" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Days            []int  `json:"days"`
	Date            int    `json:"date"`
	NextTriggerDate string `json:"nextTriggerDate"`
}

// toSchedule converts the wire shape into the calculator's value type,
// rejecting an unparseable custom trigger before validation runs.
func (b scheduleBody) toSchedule() (schedule.Schedule, error) {
	s := schedule.Schedule{
		Type:     schedule.Type(b.Type),
		Time:     b.Time,
		Days:     b.Days,
		MonthDay: b.Date,
	}
	if b.NextTriggerDate != "" {
		at, err := parseRFC3339(b.NextTriggerDate)
		if err != nil {
			return s, &schedule.FieldError{Field: "nextTriggerDate", Reason: "must be an RFC3339 timestamp"}
		}
		s.At = &at
	}
	return s, nil
}

// storedSchedule rebuilds the calculator value from a persisted row.
func storedSchedule(n models.ScheduledNotification) schedule.Schedule {
	s := schedule.Schedule{
		Type:     schedule.Type(n.ScheduleType),
		Time:     n.Time,
		MonthDay: n.MonthDay,
		At:       n.TriggerAt,
	}
	if n.Days != "" {
		for _, p := range strings.Split(n.Days, ",") {
			if d, err := strconv.Atoi(p); err == nil {
				s.Days = append(s.Days, d)
			}
		}
	}
	return s
}

func joinDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func createScheduleHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		TemplateID       string            `json:"templateId" binding:"required"`
		Schedule         scheduleBody      `json:"schedule" binding:"required"`
		Personalizations map[string]string `json:"personalizations"`
		Enabled          *bool             `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := req.Schedule.toSchedule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	next, err := schedule.Next(s, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pers := "{}"
	if len(req.Personalizations) > 0 {
		b, _ := json.Marshal(req.Personalizations)
		pers = string(b)
	}
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	n := models.ScheduledNotification{
		UserID:           user.ID,
		TemplateID:       req.TemplateID,
		ScheduleType:     string(s.Type),
		Time:             s.Time,
		Days:             joinDays(s.Days),
		MonthDay:         s.MonthDay,
		TriggerAt:        s.At,
		Personalizations: pers,
		Enabled:          enabled,
		NextFireAt:       next,
	}
	if err := db.Create(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	text, _ := schedule.Text(s)
	c.JSON(http.StatusOK, gin.H{"id": n.ID, "nextFireAt": next, "text": text})
}

func listSchedulesHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var items []models.ScheduledNotification
	if err := db.Where("user_id = ?", user.ID).Order("id asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, n := range items {
		s := storedSchedule(n)
		text, _ := schedule.Text(s)
		pers := map[string]string{}
		_ = json.Unmarshal([]byte(n.Personalizations), &pers)
		out = append(out, gin.H{
			"id":         n.ID,
			"templateId": n.TemplateID,
			"schedule": gin.H{
				"type":            n.ScheduleType,
				"time":            n.Time,
				"days":            s.Days,
				"date":            n.MonthDay,
				"nextTriggerDate": n.TriggerAt,
			},
			"personalizations": pers,
			"enabled":          n.Enabled,
			"nextFireAt":       n.NextFireAt,
			"text":             text,
		})
	}
	c.JSON(http.StatusOK, out)
}

// previewScheduleHandler recomputes the next trigger from the current
// instant and returns it with the display string. The stored NextFireAt is
// not modified.
func previewScheduleHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var n models.ScheduledNotification
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&n).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	s := storedSchedule(n)
	next, err := schedule.Next(s, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored schedule invalid"})
		return
	}
	text, _ := schedule.Text(s)
	c.JSON(http.StatusOK, gin.H{"next": next, "text": text})
}

// updateScheduleHandler toggles a schedule or replaces its definition.
func updateScheduleHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var n models.ScheduledNotification
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&n).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	var req struct {
		Enabled  *bool         `json:"enabled"`
		Schedule *scheduleBody `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]any{}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}
	if req.Schedule != nil {
		s, err := req.Schedule.toSchedule()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		next, err := schedule.Next(s, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates["schedule_type"] = string(s.Type)
		updates["time"] = s.Time
		updates["days"] = joinDays(s.Days)
		updates["month_day"] = s.MonthDay
		updates["trigger_at"] = s.At
		updates["next_fire_at"] = next
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}
	if err := db.Model(&n).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": n.ID})
}

func deleteScheduleHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.ScheduledNotification{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
