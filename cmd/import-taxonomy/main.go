package main

import (
	"flag"
	"log"

	"propfinance_app_go/config"
	"propfinance_app_go/db"
	"propfinance_app_go/services"
)

// Loads a content workbook produced by the offline generation pipeline into
// the taxonomy store. Safe to re-run: existing records are skipped and the
// county town counts are recomputed at the end of every run.
func main() {
	workbook := flag.String("file", "", "Path to the taxonomy workbook (.xlsx)")
	flag.Parse()

	if *workbook == "" {
		log.Fatal("Usage: import-taxonomy -file <workbook.xlsx>")
	}

	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	result, err := services.ImportTaxonomyWorkbook(db.DB, *workbook)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	for _, e := range result.Errors {
		log.Printf("[WARNING] %s", e)
	}
	log.Printf("Import finished: %d counties, %d towns, %d services created (%d skipped, %d failed)",
		result.CountiesCreated, result.TownsCreated, result.ServicesCreated,
		result.SkippedCount, result.FailedCount)
}
