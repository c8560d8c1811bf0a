package main

import (
	"context"
	"log"

	"github.com/vincenttwizere/Refuture-sub002/internal/client/cli"
	"github.com/vincenttwizere/Refuture-sub002/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("client init: %v", err)
	}

	app.Run(context.Background())
}
