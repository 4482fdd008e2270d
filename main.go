package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"finance-tracker-api/config"
	"finance-tracker-api/middleware"
	"finance-tracker-api/routes"
)

const version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: ", err)
	}

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations: ", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestLogger(logger))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Personal Finance Tracker API",
			"version": version,
			"status":  "running",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	public := router.Group("/")

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(db, cfg))

	routes.SetupAuthRoutes(public, protected, db, cfg)
	routes.SetupTransactionRoutes(protected, db)
	routes.SetupBudgetRoutes(protected, db)
	routes.SetupGoalRoutes(protected, db)
	routes.SetupSharedGroupRoutes(protected, db)
	routes.SetupDashboardRoutes(protected, db)

	logger.Infof("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server: ", err)
	}
}
