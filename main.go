package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	_ = godotenv.Load()

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve   Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from environment variables (or a .env file):\n")
	fmt.Fprintf(os.Stderr, "  PORT, HOST, DB_USER, DB_HOST, DB_NAME, DB_PASSWORD, DB_PORT,\n")
	fmt.Fprintf(os.Stderr, "  DATABASE_PATH, TEMPLATES_PATH, STATIC_PATH, OPENLIBRARY_BASE_URL\n")
}
