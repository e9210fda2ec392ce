package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/RaulSimioni/Sistema-Academia/internal/database"
	"github.com/RaulSimioni/Sistema-Academia/internal/importer"
)

// Imports the initial CSV batches. Tables load in dependency order and a
// failed batch only skips that table; the remaining batches still run, so
// the import can be re-pointed at fixed files and re-run safely.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	defaultDir := os.Getenv("IMPORT_DIR")
	if defaultDir == "" {
		defaultDir = "data"
	}
	dir := flag.String("dir", defaultDir, "directory containing the CSV batches")
	flag.Parse()

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, dbUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	failed := 0
	for _, table := range importer.Tables {
		path := filepath.Join(*dir, table.File)
		batch, err := importer.LoadCSV(path, table)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("%s: no batch file, skipping", table.Name)
				continue
			}
			log.Printf("%s: skipping batch: %v", table.Name, err)
			failed++
			continue
		}

		inserted, err := importer.Reconcile(ctx, db, table, batch)
		if err != nil {
			log.Printf("%s: skipping batch: %v", table.Name, err)
			failed++
			continue
		}
		log.Printf("%s: %d of %d records inserted", table.Name, len(inserted), len(batch))
	}

	if failed > 0 {
		log.Fatalf("%d batch(es) failed", failed)
	}
}
