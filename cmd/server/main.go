package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/flyhigh-app/flyhigh/internal/auth"
	"github.com/flyhigh-app/flyhigh/internal/cache"
	"github.com/flyhigh-app/flyhigh/internal/handler"
	"github.com/flyhigh-app/flyhigh/internal/predict"
	"github.com/flyhigh-app/flyhigh/internal/ratelimit"
	"github.com/flyhigh-app/flyhigh/internal/simulator"
	"github.com/flyhigh-app/flyhigh/internal/store"
)

type Config struct {
	Port         string
	RedisHost    string
	RedisPort    string
	CacheEnabled bool
	CacheTTL     time.Duration

	SearchDelay time.Duration

	IdleTimeout            time.Duration
	IdleCheckInterval      time.Duration
	KeepRememberedOnLogout bool

	PredictURL string
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	durable, err := store.NewRedisStore(store.RedisConfig{
		Host: cfg.RedisHost,
		Port: cfg.RedisPort,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	ephemeral := store.NewMemoryStore()

	authSvc, err := auth.NewService(context.Background(), durable, ephemeral, auth.Config{
		IdleTimeout:            cfg.IdleTimeout,
		IdleCheckInterval:      cfg.IdleCheckInterval,
		KeepRememberedOnLogout: cfg.KeepRememberedOnLogout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer authSvc.Close()

	if user := authSvc.CurrentUser(); user != nil {
		log.Printf("Restored remembered session for %s", user.Email)
	}

	sim := simulator.New(simulator.Config{Delay: cfg.SearchDelay})

	var searchCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.CacheTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		searchCache = redisCache
		log.Printf("Search cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.CacheTTL)
	} else {
		searchCache = cache.NewNoOpCache()
		log.Println("Search cache disabled")
	}

	loginLimiter := ratelimit.NewLoginLimiter(ratelimit.DefaultConfig())
	predictClient := predict.NewClient(cfg.PredictURL)

	searchHandler := handler.NewSearchHandler(sim, searchCache)
	authHandler := handler.NewAuthHandler(authSvc, loginLimiter)
	predictHandler := handler.NewPredictHandler(predictClient)

	e.Use(authHandler.Activity)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.Search)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)
	api.PUT("/auth/profile", authHandler.UpdateProfile)
	api.POST("/predict", predictHandler.Predict)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flyhigh server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		CacheEnabled: getEnvBool("CACHE_ENABLED", true),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),

		SearchDelay: getEnvDuration("SEARCH_DELAY", simulator.DefaultDelay),

		IdleTimeout:            getEnvDuration("AUTH_IDLE_TIMEOUT", auth.DefaultIdleTimeout),
		IdleCheckInterval:      getEnvDuration("AUTH_IDLE_CHECK_INTERVAL", auth.DefaultIdleCheckInterval),
		KeepRememberedOnLogout: getEnvBool("AUTH_KEEP_REMEMBERED_ON_LOGOUT", false),

		PredictURL: getEnv("PREDICT_URL", "http://127.0.0.1:5000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
