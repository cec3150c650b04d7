package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	loadConfig()
	if simulateOutcomes {
		rechargeOutcome = simulatedOutcome
		logrus.Warn("recharge outcome simulation enabled; do not use in production")
	}

	// Support a lightweight migrate command: `./meterpay migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()

	setupRoutes(r)

	port := envOr("APP_PORT", "8081")
	logrus.Infof("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal("server error: ", err)
	}
}
