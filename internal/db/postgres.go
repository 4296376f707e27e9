package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logrus.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logrus.Fatal("Postgres connection failed: ", err)
	}

	logrus.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		logrus.Fatal("failed to initialize schema: ", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// ADMIN ALLOW-LIST
	// -------------------------------
	adminsSQL := `
		CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, adminsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SESSIONS
	// -------------------------------
	sessionsSQL := `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			email VARCHAR(255) NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, sessionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTES
	// -------------------------------
	restaurantesSQL := `
		CREATE TABLE IF NOT EXISTS restaurantes (
			id UUID PRIMARY KEY,
			nome VARCHAR(255) NOT NULL,
			tipo VARCHAR(100) NOT NULL,
			descricao TEXT NOT NULL,
			imagem_url VARCHAR(500),
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			tags TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantesSQL); err != nil {
		return err
	}

	// -------------------------------
	// AI USAGE LOGS
	// -------------------------------
	usageLogsSQL := `
		CREATE TABLE IF NOT EXISTS ai_usage_logs (
			id SERIAL PRIMARY KEY,
			input_text TEXT NOT NULL,
			provider VARCHAR(50) NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usageLogsSQL); err != nil {
		return err
	}

	logrus.Info("schema initialized")
	return nil
}
