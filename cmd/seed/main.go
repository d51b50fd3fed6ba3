// Package main provides a tool to seed the database with directory data.
//
// Without a seed file it loads the built-in San Francisco dataset into any
// empty collections. With --file it replaces businesses, reviews, and deals
// from a JSON seed file, leaving bookmarks and the session untouched.
//
// Usage:
//
//	DB_PATH=~/BrightSide/data/db go run ./cmd/seed
//	DB_PATH=~/BrightSide/data/db go run ./cmd/seed --file ./seed.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brightsideapp/brightside-server/internal/store"
	"github.com/brightsideapp/brightside-server/internal/watcher"
)

var seedFile = flag.String("file", "", "JSON seed file to load instead of the built-in dataset")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/BrightSide/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil, store.NewNoopEmitter())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *seedFile != "" {
		fmt.Printf("Loading seed file: %s\n", *seedFile)
		data, err := watcher.LoadSeedFile(*seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		if err := s.LoadSeedData(ctx, data); err != nil {
			log.Fatalf("Failed to apply seed data: %v", err)
		}
	} else {
		fmt.Println("Loading built-in dataset into empty collections...")
		if err := s.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	businesses, err := s.GetBusinesses(ctx)
	if err != nil {
		log.Fatalf("Failed to read back businesses: %v", err)
	}
	reviews, err := s.GetReviews(ctx)
	if err != nil {
		log.Fatalf("Failed to read back reviews: %v", err)
	}
	deals, err := s.GetDeals(ctx)
	if err != nil {
		log.Fatalf("Failed to read back deals: %v", err)
	}

	fmt.Println("\nSeeding complete!")
	fmt.Printf("  Businesses: %d\n", len(businesses))
	fmt.Printf("  Reviews:    %d\n", len(reviews))
	fmt.Printf("  Deals:      %d\n", len(deals))
}
