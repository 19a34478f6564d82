package main

import (
	"context"
	"log"

	"ai-roomplanner-be/internal/bootstrap"
	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/config"
	"ai-roomplanner-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Load the embedded catalog
	store := catalog.MustLoad()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(store, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
