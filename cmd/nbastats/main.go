package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/analytics"
	"github.com/A1Marky/premium-nba-api/internal/api/rest"
	"github.com/A1Marky/premium-nba-api/internal/cache"
	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/A1Marky/premium-nba-api/internal/provider/bref"
	"github.com/A1Marky/premium-nba-api/internal/provider/nba"
	"github.com/A1Marky/premium-nba-api/internal/service"
	"github.com/A1Marky/premium-nba-api/internal/store"
	"github.com/A1Marky/premium-nba-api/internal/store/repository"
	"github.com/joho/godotenv"
)

const (
	serviceName    = "premium-nba-api"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - NBA Prop Analytics Service", serviceName, serviceVersion)

	// Load configuration from environment (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config := loadConfig()

	// Initialize archive database (optional: the service degrades to
	// provider-only fetching without it)
	var db *store.Database
	var archive service.GameLogArchive
	if config.ArchiveDSN != "" {
		var err error
		db, err = store.NewDatabase(config.ArchiveDSN)
		if err != nil {
			log.Fatalf("Failed to connect to archive database: %v", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(); err != nil {
			log.Fatalf("Failed to apply archive schema: %v", err)
		}
		archive = repository.NewGameLogRepository(db)
		log.Println("✓ Connected to archive database")
	} else {
		log.Println("⚠️  ARCHIVE_DSN not set, running without archive")
	}

	// Initialize Redis cache with retry logic (optional)
	var redisCache *cache.RedisCache
	var payloadCache service.PayloadCache
	if config.RedisURL != "" {
		maxRetries := 30
		retryDelay := 2 * time.Second

		log.Println("Connecting to Redis...")
		var err error
		for i := 0; i < maxRetries; i++ {
			redisCache, err = cache.NewRedisCache(config.RedisURL)
			if err == nil {
				break
			}

			if i < maxRetries-1 {
				log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
				time.Sleep(retryDelay)
			} else {
				log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
			}
		}
		defer redisCache.Close()
		payloadCache = redisCache
		log.Println("✓ Connected to Redis")
	} else {
		log.Println("⚠️  REDIS_URL not set, running without cache")
	}

	// Primary game log source: the NBA Stats API
	nbaClient := nba.New(config.NBAAPIBase)
	log.Println("✓ NBA Stats client ready")

	// Fallback source: headless-browser scraper (optional)
	var fallback provider.GameLogSource
	if config.EnableScraper {
		scraper, err := bref.NewScraper(config.BRefBase)
		if err != nil {
			log.Printf("⚠️  Scraper unavailable: %v (continuing without fallback)", err)
		} else {
			defer scraper.Close()
			fallback = scraper
			log.Println("✓ Scraper fallback ready")
		}
	}

	var resolver analytics.SeasonResolver
	if config.CurrentSeason != "" {
		season := config.CurrentSeason
		resolver = func() string { return season }
	} else {
		resolver = analytics.DefaultSeasonResolver(time.Now)
	}

	analyticsService := service.NewAnalyticsService(nbaClient, fallback, payloadCache, archive, resolver)

	// Initialize REST API server
	restServer := rest.NewServer(config.RESTPort, analyticsService, db, redisCache)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

type Config struct {
	ArchiveDSN    string
	RedisURL      string
	RESTPort      string
	NBAAPIBase    string
	BRefBase      string
	CurrentSeason string
	EnableScraper bool
}

func loadConfig() Config {
	return Config{
		ArchiveDSN:    getEnv("ARCHIVE_DSN", ""),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		RESTPort:      getEnv("REST_PORT", "8080"),
		NBAAPIBase:    getEnv("NBA_API_BASE", nba.BaseURL),
		BRefBase:      getEnv("BREF_BASE", bref.BaseURL),
		CurrentSeason: getEnv("CURRENT_SEASON", ""),
		EnableScraper: getEnv("ENABLE_SCRAPER", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
