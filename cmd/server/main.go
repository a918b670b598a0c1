package main

import (
	"context"
	"log"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/server"
	"github.com/barberbook/barberbook/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := server.NewApp(cfg, logging.NewStdoutLogger())
	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
