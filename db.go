package main

import (
	"os"
	"strings"
	"time"

	"meterpay/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logrus.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatal("failed to connect postgres database: ", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	// Ensure the roles master table exists first and seed it so users FK can be applied safely.
	if shouldMigrate {
		if err := db.AutoMigrate(&models.Role{}); err != nil {
			logrus.Warnf("migration warning (roles): %v", err)
		}
	}
	seedRoles()

	// Now migrate the rest (users will get FK to roles)
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			logrus.Warnf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Meter{}); err != nil {
			logrus.Warnf("migration warning (meters): %v", err)
		}
		if err := db.AutoMigrate(&models.Transaction{}); err != nil {
			logrus.Warnf("migration warning (transactions): %v", err)
		}
		if err := db.AutoMigrate(&models.Debt{}); err != nil {
			logrus.Warnf("migration warning (debts): %v", err)
		}
		if err := db.AutoMigrate(&models.WalletTransaction{}); err != nil {
			logrus.Warnf("migration warning (wallet_transactions): %v", err)
		}
		if err := db.AutoMigrate(&models.ScheduledNotification{}); err != nil {
			logrus.Warnf("migration warning (scheduled_notifications): %v", err)
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			logrus.Warnf("migration warning (refresh_tokens): %v", err)
		}
	}
	seedDB()
}

func seedRoles() {
	roles := []models.Role{{Name: "administrator", Description: "full access"}, {Name: "user", Description: "regular user"}}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

// seedDB provisions the demo account the clients expect on first run: a
// user with a starting wallet balance, one registered meter and a couple of
// open bills against it. Idempotent; it only writes when the rows are
// missing.
func seedDB() {
	seedRoles()

	var count int64
	db.Model(&models.User{}).Where("username = ?", "demo").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("name = ?", "user").First(&role).Error; err != nil {
			logrus.Warnf("failed to find user role: %v", err)
		}
		rid := role.ID
		demo := models.User{
			Username:      "demo",
			RoleID:        &rid,
			WalletBalance: decimal.RequireFromString("100.00"),
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		demo.HashedPassword = hashedPassword
		db.Create(&demo)
		logrus.Info("Seeded demo user: username=demo, password=demo1234")
	}

	var demo models.User
	if err := db.Where("username = ?", "demo").First(&demo).Error; err != nil {
		logrus.Warnf("failed to find demo user after seeding: %v", err)
		return
	}
	var mcount int64
	db.Model(&models.Meter{}).Where("user_id = ?", demo.ID).Count(&mcount)
	if mcount == 0 {
		meter := models.Meter{
			UserID:       demo.ID,
			MeterNumber:  "04123456789",
			Nickname:     "Home",
			CustomerName: "Demo User",
			Type:         "STS",
			Status:       models.MeterStatusActive,
		}
		if err := db.Create(&meter).Error; err != nil {
			logrus.Warnf("failed to seed demo meter: %v", err)
			return
		}
		debts := []models.Debt{
			{UserID: demo.ID, MeterNumber: meter.MeterNumber, Amount: decimal.RequireFromString("35.50"),
				Category: models.DebtCategoryElectricity, DueDate: time.Now().AddDate(0, 0, 14)},
			{UserID: demo.ID, MeterNumber: meter.MeterNumber, Amount: decimal.RequireFromString("12.00"),
				Category: models.DebtCategoryTrash, DueDate: time.Now().AddDate(0, 1, 0)},
		}
		if err := db.Create(&debts).Error; err != nil {
			logrus.Warnf("failed to seed demo debts: %v", err)
		}
	}
}
