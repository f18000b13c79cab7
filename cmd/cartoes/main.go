package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/diewo77/cartoes/internal/commands"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
