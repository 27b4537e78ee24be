// Package main provides the leaptype CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/leapstack-labs/leaptype/internal/cli"
)

func main() {
	// A missing .env is fine; LEAPTYPE_* variables may come from the shell.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
