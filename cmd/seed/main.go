package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/newsdesk/portal/internal/app"
	"github.com/newsdesk/portal/internal/config"
	"github.com/newsdesk/portal/internal/seed"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
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

	if err := seed.Run(context.Background(), application.Store(), application.Logger()); err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		return 1
	}

	fmt.Println("Seeding completed successfully")
	return 0
}
