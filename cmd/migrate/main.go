package main

import (
	"context"
	"fmt"
	"folio/config"
	"folio/database"
	"folio/seed"
	"log"
	"os"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate:", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		inserted, err := seed.Run(ctx, store)
		if err != nil {
			log.Fatal("Failed to seed:", err)
		}
		fmt.Printf("Seeded %d projects\n", inserted)
	}

	fmt.Println("\nAll migrations completed!")
}
