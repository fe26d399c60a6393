package main

import (
	"time"

	"billmint-backend/internal/config"
	"billmint-backend/internal/logging"
	"billmint-backend/internal/models"
	"billmint-backend/internal/routes"
	"billmint-backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := storage.Open(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer storage.Close(db)

	if err := storage.Migrate(db,
		&models.Customer{},
		&models.Product{},
		&models.Invoice{},
	); err != nil {
		logger.WithError(err).Fatal("failed to migrate schema")
	}
	logger.WithField("driver", cfg.DBDriver).Info("database connected")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(logger))
	// CORS is wide open so the mobile client can talk to us directly.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	logger.WithField("port", cfg.Port).Info("BillMint API server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
