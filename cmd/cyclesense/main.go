package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("cyclesense: %v", err)
	}
}
