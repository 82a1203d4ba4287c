// Command seed migrates the schema and creates the initial admin login.
// Run once against a fresh database:
//
//	go run ./cmd/seed -config etc/config-dev.yaml -admin-pass <password>
package main

import (
	"flag"
	"log/slog"
	"os"

	"shift-roster/internal/config"
	applog "shift-roster/internal/logger"
	"shift-roster/internal/model"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	adminUser := flag.String("admin-user", "admin", "initial admin username")
	adminPass := flag.String("admin-pass", "", "initial admin password (required)")
	flag.Parse()

	if *adminPass == "" {
		slog.Error("missing -admin-pass")
		os.Exit(1)
	}

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&model.User{}, &model.Member{}, &model.ShiftOverride{},
		&model.Event{}, &model.Quota{},
	)
	if err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}
	slog.Info("schema migrated")

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPass), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		os.Exit(1)
	}

	var existing model.User
	if db.Where("username = ?", *adminUser).First(&existing).Error == nil {
		slog.Info("admin user already exists", "username", *adminUser)
		return
	}
	u := model.User{Username: *adminUser, Password: string(hash), Name: *adminUser, Role: "admin"}
	if err := db.Create(&u).Error; err != nil {
		slog.Error("create admin failed", "err", err)
		os.Exit(1)
	}
	slog.Info("admin user created", "username", *adminUser, "id", u.ID)
}
