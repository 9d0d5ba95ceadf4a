package main

import (
	"context"
	"log"

	"github.com/ivanosipov/wordvault/internal/server"
	"github.com/ivanosipov/wordvault/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
