package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/newsdesk/portal/internal/app"
	"github.com/newsdesk/portal/internal/config"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional; environment wins over config file either way
	_ = godotenv.Load()

	application, err := app.New(app.Options{
		ConfigPath: config.GetConfigPath("config.yml"),
		Version:    version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer func() { _ = application.Close() }()

	if err := application.Run(context.Background()); err != nil {
		return 1
	}
	return 0
}
