package main

import (
	"context"
	"log"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/cli"
	"github.com/Pranavrh53/skill-exchange-platform/internal/client/config"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
