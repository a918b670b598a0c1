package main

import (
	"context"
	"log"

	"github.com/barberbook/barberbook/internal/client"
	"github.com/barberbook/barberbook/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := client.NewApp(cfg)
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
