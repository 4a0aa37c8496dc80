package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"coinflip-casino-backend/internal/config"
	"coinflip-casino-backend/internal/handlers"
	"coinflip-casino-backend/internal/middleware"
	"coinflip-casino-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisService.Close()

	jwtService := services.NewJWTService(cfg)
	wsHandler := handlers.NewWebSocketHandler()

	oracle := services.NewSimOracle(cfg.OracleDelay)
	engine := services.NewFlipEngine(cfg, oracle, redisService, wsHandler)
	oracle.Bind(engine)

	authHandler := handlers.NewAuthHandler(jwtService)
	gameHandler := handlers.NewGameHandler(engine, redisService)
	poolHandler := handlers.NewPoolHandler(engine)
	oracleHandler := handlers.NewOracleHandler(engine)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/auth/token", middleware.APIKeyGuard(cfg.APIKey), authHandler.IssueToken)

	oracleRoutes := router.Group("/oracle", middleware.OracleKeyGuard(cfg.OracleKey))
	{
		oracleRoutes.POST("/callback", oracleHandler.Callback)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.GET("/ws", wsHandler.HandleWebSocket)

		flip := protected.Group("/flip")
		{
			flip.POST("", gameHandler.Flip)
			flip.GET("", gameHandler.GetBet)
			flip.GET("/won", gameHandler.IsBetWon)
			flip.POST("/claim", gameHandler.Claim)
		}

		pool := protected.Group("/pool")
		{
			pool.GET("", poolHandler.GetBalance)
			pool.POST("/deposit", poolHandler.Deposit)
			pool.POST("/fees", poolHandler.FundFees)
			pool.POST("/withdraw", poolHandler.Withdraw)
		}

		protected.GET("/history", gameHandler.GetHistory)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
