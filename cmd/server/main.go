package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laplante/coach-app/internal/advice"
	"laplante/coach-app/internal/api"
	"laplante/coach-app/internal/config"
	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/repository/mongo"
	"laplante/coach-app/internal/seed"
	"laplante/coach-app/internal/service"
	"laplante/coach-app/internal/state"
	"laplante/coach-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Coach App API
// @version 1.0
// @description In-memory coaching state: workouts, weigh-ins, chat, branding and advice.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	log.Println("Starting Coach App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Seed State ---
	initial, err := loadSeed(cfg.Seed)
	if err != nil {
		log.Fatalf("FATAL: Could not load seed data: %v", err)
	}
	if cfg.Business.Name != "" {
		initial.Config.Name = cfg.Business.Name
	}
	store := state.NewStore(initial, cfg.Store.HistoryLimit)
	log.Printf("State store ready: %d clients, history limit %d", len(initial.Clients), cfg.Store.HistoryLimit)

	// --- Advice Generator ---
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	generator, err := advice.NewGemini(ctx, cfg.Advice, advice.WithCoachName(initial.Admin.Name))
	cancel()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize advice generator: %v", err)
	}
	if !generator.Configured() {
		log.Println("WARN: No advice API key configured; advice requests return a setup hint.")
	}

	// --- Initialize Services ---
	coachingService := service.NewCoachingService(store, generator,
		service.WithAdviceTimeout(cfg.Advice.Timeout),
		service.WithMaxLogoBytes(cfg.Business.MaxLogoBytes),
	)

	// --- Initial Logo ---
	if cfg.S3.LogoImportEnabled() {
		importLogo(coachingService, cfg.S3)
	}

	// --- Initialize Gin Engine ---
	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware
	router.MaxMultipartMemory = cfg.Business.MaxLogoBytes + 1<<10

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, coachingService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}
	coachingService.Close()

	log.Println("Server exiting.")
}

// loadSeed builds the initial snapshot from the built-in demo data or from MongoDB.
func loadSeed(cfg config.SeedConfig) (domain.AppState, error) {
	if cfg.Source != config.SeedSourceMongo {
		log.Println("Using built-in demo seed data.")
		return seed.Demo(time.Now()), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	dbClient, err := mongo.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		return domain.AppState{}, err
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	seedDB := dbClient.Database(cfg.Database)

	mongo.EnsureSeedIndexes(ctx, seedDB)
	s, err := seed.Load(ctx, mongo.NewMongoSeedRepository(seedDB))
	if err != nil {
		return domain.AppState{}, err
	}
	log.Printf("Seed data loaded from database %q.", cfg.Database)
	return s, nil
}

// importLogo installs the configured S3 object as the logo. Failures are
// logged; the server starts without a logo.
func importLogo(coachingService service.CoachingService, cfg config.S3Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	objects, err := storage.NewS3Storage(ctx, cfg)
	if err != nil {
		log.Printf("ERROR: Failed to initialize S3 storage: %v", err)
		return
	}
	if _, err := coachingService.ImportLogo(ctx, objects, cfg.LogoKey); err != nil {
		log.Printf("ERROR: Failed to import logo %s/%s: %v", cfg.BucketName, cfg.LogoKey, err)
		return
	}
	log.Printf("Logo imported from %s/%s", cfg.BucketName, cfg.LogoKey)
}
