package main

import (
	"log"

	"word-tracker/bot"
	"word-tracker/commands"
	"word-tracker/config"
	"word-tracker/handlers"
	"word-tracker/store"
	"word-tracker/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Error initializing store: %v", err)
	}

	auditDB, err := database.InitOccurrenceDB(cfg.AuditDBPath)
	if err != nil {
		// The occurrence log is advisory; counting works without it.
		log.Printf("Warning: occurrence log disabled: %v", err)
		auditDB = nil
	}

	b, err := bot.New(cfg, st, auditDB)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run(commands.Generate())

	b.Close()
}
