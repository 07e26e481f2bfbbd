package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"spellbound/internal/config"
	"spellbound/internal/database"
	"spellbound/internal/handlers"
	"spellbound/internal/repository"
	"spellbound/internal/security"
	"spellbound/internal/service"
	"spellbound/internal/utils"
	"spellbound/internal/wordbank"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories and services
	saveRepo := repository.NewSaveRepo(db)
	profileService, err := service.NewProfileService(saveRepo)
	if err != nil {
		log.Fatalf("Failed to load family save state: %v", err)
	}
	gameService := service.NewGameService(profileService)
	shopService := service.NewShopService(profileService)
	bank := wordbank.New()
	ttsService := utils.NewTTSService(filepath.Join(cfg.StaticFilesPath, "audio"))

	// Initialize handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(limiter)
	gameHandler := handlers.NewGameHandler(gameService)
	profileHandler := handlers.NewProfileHandler(profileService)
	listHandler := handlers.NewListHandler(bank, profileService, ttsService)
	shopHandler := handlers.NewShopHandler(shopService, profileService)
	speechHandler := handlers.NewSpeechHandler(ttsService)

	// Setup routes
	mux := http.NewServeMux()

	// Static files (pronunciation audio)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Family and profiles
	mux.HandleFunc("GET /api/family/children", profileHandler.ListChildren)
	mux.HandleFunc("POST /api/family/children", profileHandler.CreateChild)
	mux.HandleFunc("GET /api/family/children/suggest-name", profileHandler.SuggestName)
	mux.HandleFunc("POST /api/family/children/{id}/update", profileHandler.UpdateChild)
	mux.HandleFunc("POST /api/family/children/{id}/delete", profileHandler.DeleteChild)
	mux.HandleFunc("POST /api/family/children/{id}/select", profileHandler.SelectChild)
	mux.HandleFunc("GET /api/family/current", profileHandler.GetCurrentChild)
	mux.HandleFunc("GET /api/family/pin", profileHandler.GetPinStatus)
	mux.HandleFunc("POST /api/family/pin", middleware.RateLimit(profileHandler.SetPin))
	mux.HandleFunc("POST /api/family/pin/verify", middleware.RateLimit(profileHandler.VerifyPin))

	// Word sets and saved lists
	mux.HandleFunc("POST /api/lists/random", listHandler.CreateRandomSet)
	mux.HandleFunc("POST /api/lists/reroll", listHandler.RerollWords)
	mux.HandleFunc("POST /api/lists/custom", listHandler.CreateCustomSet)
	mux.HandleFunc("POST /api/words/custom", middleware.RateLimit(listHandler.AddCustomWord))
	mux.HandleFunc("GET /api/children/{id}/lists", listHandler.ListSavedSets)
	mux.HandleFunc("POST /api/children/{id}/lists", listHandler.SaveSet)
	mux.HandleFunc("POST /api/children/{id}/lists/{setId}/load", listHandler.LoadSavedSet)
	mux.HandleFunc("POST /api/children/{id}/lists/{setId}/delete", listHandler.DeleteSavedSet)

	// Game sessions
	mux.HandleFunc("POST /api/game/start", gameHandler.StartGame)
	mux.HandleFunc("GET /api/game/state", gameHandler.GetState)
	mux.HandleFunc("POST /api/game/answer", gameHandler.SubmitAnswer)
	mux.HandleFunc("POST /api/game/hint", gameHandler.UseHint)
	mux.HandleFunc("POST /api/game/next", gameHandler.NextWord)
	mux.HandleFunc("POST /api/game/finish", gameHandler.FinishGame)
	mux.HandleFunc("POST /api/game/exit", gameHandler.ExitGame)

	// Shop and room
	mux.HandleFunc("GET /api/shop/items", shopHandler.ListItems)
	mux.HandleFunc("POST /api/shop/purchase", shopHandler.Purchase)
	mux.HandleFunc("POST /api/shop/equip", shopHandler.ToggleEquip)
	mux.HandleFunc("GET /api/children/{id}/items", shopHandler.ListOwnedItems)
	mux.HandleFunc("GET /api/children/{id}/room", shopHandler.GetRoom)
	mux.HandleFunc("PUT /api/children/{id}/room", shopHandler.UpdateRoom)

	// Speech
	mux.HandleFunc("POST /api/speak", speechHandler.Speak)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handlers.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-done
	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
