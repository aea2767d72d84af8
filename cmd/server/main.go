package main

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"finverse/internal/chat/openrouter"
	"finverse/internal/config"
	"finverse/internal/filing"
	"finverse/internal/handler"
	"finverse/internal/port"
	"finverse/internal/repository/memory"
	"finverse/internal/repository/postgres"
	"finverse/internal/router"
	"finverse/internal/service"
	s3storage "finverse/internal/storage/s3"
)

// @title Finverse API
// @version 1.0
// @description Backend for the fintech multiverse prototype: personas, advisory chat, and SEC filing parsing.
// @BasePath /api
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Persona store: volatile in-memory by default, postgres when configured.
	var personaRepo port.PersonaRepository
	var db *sqlx.DB
	switch cfg.Persona.Store {
	case "postgres":
		db, err = postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		personaRepo = postgres.NewPersonaRepo(db)
	default:
		personaRepo = memory.NewPersonaRepo()
	}

	// Optional filing archive
	var archive port.ObjectStorage
	if cfg.S3.Enabled() {
		archive, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	personaSvc := service.NewPersonaService(personaRepo)
	chatSvc := service.NewChatService(openrouter.NewClient(&cfg.Chat))
	filingSvc := service.NewFilingService(filing.NewParser(&cfg.Parser), archive, &cfg.S3)

	// Initialize handlers
	dev := !cfg.Server.IsProduction()
	personaH := handler.NewPersonaHandler(personaSvc, dev)
	chatH := handler.NewChatHandler(chatSvc, dev)
	filingH := handler.NewFilingHandler(filingSvc, dev)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, personaH, filingH, chatH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
