package main

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/BrightSide/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	var (
		businesses []domain.Business
		reviews    []domain.Review
		folders    []domain.BookmarkFolder
		deals      []domain.Deal
		session    *domain.UserSession
	)

	err = db.View(func(txn *badger.Txn) error {
		if err := readKey(txn, store.KeyBusinesses, &businesses); err != nil {
			return err
		}
		if err := readKey(txn, store.KeyReviews, &reviews); err != nil {
			return err
		}
		if err := readKey(txn, store.KeyBookmarks, &folders); err != nil {
			return err
		}
		if err := readKey(txn, store.KeyDeals, &deals); err != nil {
			return err
		}
		return readKey(txn, store.KeySession, &session)
	})
	if err != nil {
		log.Fatalf("Error reading database: %v", err)
	}

	// Per-category breakdown
	byCategory := map[string]int{}
	for _, b := range businesses {
		byCategory[b.Category]++
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	fmt.Printf("Businesses: %d\n", len(businesses))
	for _, c := range categories {
		fmt.Printf("  %-12s %d\n", c, byCategory[c])
	}
	fmt.Println()

	reviewsByBusiness := map[string]int{}
	for _, r := range reviews {
		reviewsByBusiness[r.BusinessID]++
	}
	fmt.Printf("Reviews: %d across %d businesses\n", len(reviews), len(reviewsByBusiness))

	now := time.Now()
	active := 0
	for _, d := range deals {
		if d.IsActiveAt(now) {
			active++
		}
	}
	fmt.Printf("Deals: %d (%d active)\n", len(deals), active)

	fmt.Printf("Bookmark folders: %d\n", len(folders))
	for _, f := range folders {
		fmt.Printf("  %s (%s): %d businesses, %d notes\n", f.Name, f.ID, len(f.BusinessIDs), len(f.Notes))
	}
	fmt.Println()

	if session == nil {
		fmt.Println("Session: none")
	} else {
		fmt.Printf("Session: %s\n", session.ID)
		fmt.Printf("  Onboarding complete: %v\n", session.OnboardingComplete)
		fmt.Printf("  High contrast:       %v\n", session.HighContrastMode)
		fmt.Printf("  Reviews this window: %d\n", session.ReviewsThisHour)
		if !session.LastReviewTime.IsZero() {
			fmt.Printf("  Last review:         %s\n", session.LastReviewTime.Format(time.RFC3339))
		}
	}
}

// readKey decodes a collection key into out. A missing key leaves out untouched.
func readKey(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
