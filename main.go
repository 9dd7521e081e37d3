package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/vidya/cmd"
)

func main() {
	// Missing .env is fine; configuration may come from the real env.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
