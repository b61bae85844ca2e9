package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/Sa-pphire/qr-code-gen/config"
	"github.com/Sa-pphire/qr-code-gen/internal/app"
	"github.com/joho/godotenv"
)

const _defaultEnvFile = ".env"

func main() {
	// Config
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = _defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("config error: load %s: %s", envFile, err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
