// createadmin seeds or resets an admin account: upserts the user with a
// fresh password hash and makes sure the email is on the allow-list.
package main

import (
	"context"
	"os"

	"github.com/EricAugusto93/Taste-Teste/internal/auth"
	"github.com/EricAugusto93/Taste-Teste/internal/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatal("failed to hash password: ", err)
	}

	userRepo := auth.NewPostgresUserRepository(pgDB)
	if err := userRepo.Save(ctx, &auth.User{
		Email:    email,
		Password: string(hash),
	}); err != nil {
		logrus.Fatal("failed to save admin user: ", err)
	}

	adminRepo := auth.NewPostgresAdminRepository(pgDB)
	if err := adminRepo.Ensure(ctx, email); err != nil {
		logrus.Fatal("failed to update allow-list: ", err)
	}

	logrus.Infof("admin %s is ready", email)
}
