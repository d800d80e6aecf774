package main

import (
	"log"
	"net/http"

	"github.com/diegoclair/slack-shift-bot/internal/config"
	"github.com/diegoclair/slack-shift-bot/internal/database"
	"github.com/diegoclair/slack-shift-bot/internal/domain/service"
	"github.com/diegoclair/slack-shift-bot/internal/handlers"
	"github.com/diegoclair/slack-shift-bot/migrator/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)
	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(dm, slackClient, cfg)

	services.Reminder.Start()
	defer services.Reminder.Stop()

	slackHandler := handlers.New(services.Shift, cfg.SlackSigningSecret)
	apiHandler := handlers.NewAPI(services.Shift)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/slack/commands", slackHandler.HandleSlashCommand)
	r.Route("/api", apiHandler.Routes)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
