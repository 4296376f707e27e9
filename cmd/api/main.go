package main

import (
	"context"
	"os"
	"time"

	"github.com/EricAugusto93/Taste-Teste/internal/auth"
	"github.com/EricAugusto93/Taste-Teste/internal/db"
	"github.com/EricAugusto93/Taste-Teste/internal/middleware"
	"github.com/EricAugusto93/Taste-Teste/internal/restaurant"
	"github.com/EricAugusto93/Taste-Teste/internal/search"
	"github.com/EricAugusto93/Taste-Teste/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			logrus.Fatalf("missing env var: %s", k)
		}
	}

	// Provider keys are per-request requirements, not boot requirements:
	// a missing key fails only the requests that select that provider.

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		logrus.Fatal("R2 init failed: ", err)
	}
	storageHandler := storage.NewHandler(r2Client)

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	adminRepo := auth.NewPostgresAdminRepository(pgDB)
	sessionRepo := auth.NewPostgresSessionRepository(pgDB)

	authService := auth.NewService(userRepo, adminRepo, sessionRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authHandler.Me)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	restaurantService := restaurant.NewService(restaurantRepo)
	restaurantHandler := restaurant.NewHandler(restaurantService)

	admin := r.Group("/api")
	admin.Use(
		middleware.AuthMiddleware(authService),
		middleware.RequireAdmin(authService),
	)
	{
		admin.GET("/restaurantes", restaurantHandler.List)
		admin.GET("/restaurantes/:id", restaurantHandler.GetByID)
		admin.POST("/restaurantes", restaurantHandler.Create)
		admin.PATCH("/restaurantes/:id", restaurantHandler.Update)
		admin.DELETE("/restaurantes/:id", restaurantHandler.Delete)

		admin.POST("/imagens", storageHandler.Upload)
		admin.DELETE("/imagens", storageHandler.Delete)
	}

	// ───────────────────────── SEARCH RELAY ─────────────────────────
	usageRepo := search.NewPostgresUsageLogRepository(pgDB)
	searchService := search.NewService(usageRepo)
	searchHandler := search.NewHandler(searchService)

	r.POST("/api/search/interpret", searchHandler.Interpret)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.Infof("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal("failed to start server: ", err)
	}
}
