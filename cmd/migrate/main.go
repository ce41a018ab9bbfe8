package main

import (
	"flag"
	"fmt"
	"os"

	"cardlink-backend/internal/config"
	"cardlink-backend/internal/db/migrate"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	if err := migrate.Run(config.DatabaseURL(), *direction); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("migrations %s complete\n", *direction)
}
