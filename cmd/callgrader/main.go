package main

import (
	"os"

	"github.com/joho/godotenv"

	"callgrader-go/internal/display"
)

func main() {
	_ = godotenv.Load() // loads .env

	if err := newRootCmd().Execute(); err != nil {
		display.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
