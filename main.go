package main

import (
	"codeventure_gateway/internal/app"
	"codeventure_gateway/internal/config"
	"codeventure_gateway/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
