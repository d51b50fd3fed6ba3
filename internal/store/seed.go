package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
)

// SeedData is the shape of a seed dataset, embedded or loaded from disk.
type SeedData struct {
	Businesses []domain.Business `json:"businesses"`
	Reviews    []domain.Review   `json:"reviews"`
	Deals      []domain.Deal     `json:"deals"`
}

// Seed populates each collection with the built-in dataset, but only for keys
// that are absent. Existing data is never touched, so Seed is safe to run on
// every startup. The bookmark collection is seeded with just the default
// folder, and a fresh session is created.
func (s *Store) Seed(ctx context.Context) error {
	data := DefaultSeedData(s.now())
	applyRatings(data.Businesses, data.Reviews)

	seeded := 0
	err := s.db.Update(func(txn *badger.Txn) error {
		plant := func(key string, value any) error {
			_, err := txn.Get([]byte(key))
			if err == nil {
				return nil
			}
			if err != badger.ErrKeyNotFound {
				return fmt.Errorf("get %s: %w", key, err)
			}
			seeded++
			return setInTxn(txn, key, value)
		}

		if err := plant(KeyBusinesses, data.Businesses); err != nil {
			return err
		}
		if err := plant(KeyReviews, data.Reviews); err != nil {
			return err
		}
		if err := plant(KeyDeals, data.Deals); err != nil {
			return err
		}
		if err := plant(KeyBookmarks, []domain.BookmarkFolder{domain.NewDefaultFolder(s.now())}); err != nil {
			return err
		}
		return plant(KeySession, domain.UserSession{
			ID:        id.MustGenerate(id.Session),
			CreatedAt: s.now(),
		})
	})
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	if seeded > 0 {
		for _, b := range data.Businesses {
			s.indexBusiness(ctx, &b)
		}
		if s.logger != nil {
			s.logger.Info("seeded store", "collections", seeded)
		}
	}
	return nil
}

// LoadSeedData replaces the business, review, and deal collections with the
// given dataset, recomputing rating aggregates. Bookmarks and the session are
// preserved. Used by the seed-file watcher and the out-of-band seed command.
func (s *Store) LoadSeedData(ctx context.Context, data SeedData) error {
	applyRatings(data.Businesses, data.Reviews)

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := setInTxn(txn, KeyBusinesses, data.Businesses); err != nil {
			return err
		}
		if err := setInTxn(txn, KeyReviews, data.Reviews); err != nil {
			return err
		}
		return setInTxn(txn, KeyDeals, data.Deals)
	})
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	for _, b := range data.Businesses {
		s.indexBusiness(ctx, &b)
	}
	s.emit("business", "updated", "")

	if s.logger != nil {
		s.logger.Info("loaded seed data",
			"businesses", len(data.Businesses),
			"reviews", len(data.Reviews),
			"deals", len(data.Deals),
		)
	}
	return nil
}

// applyRatings recomputes per-business rating aggregates from the review set
// so seed files never need to keep the two in sync by hand.
func applyRatings(businesses []domain.Business, reviews []domain.Review) {
	byBusiness := make(map[string][]float64)
	for _, r := range reviews {
		byBusiness[r.BusinessID] = append(byBusiness[r.BusinessID], r.Rating)
	}
	for i := range businesses {
		businesses[i].ApplyRatings(byBusiness[businesses[i].ID])
	}
}

func weekdayHours(open, close int) map[string]domain.DayHours {
	return map[string]domain.DayHours{
		"monday":    {Open: open, Close: close},
		"tuesday":   {Open: open, Close: close},
		"wednesday": {Open: open, Close: close},
		"thursday":  {Open: open, Close: close},
		"friday":    {Open: open, Close: close},
	}
}

func withWeekend(hours map[string]domain.DayHours, open, close int) map[string]domain.DayHours {
	hours["saturday"] = domain.DayHours{Open: open, Close: close}
	hours["sunday"] = domain.DayHours{Open: open, Close: close}
	return hours
}

// DefaultSeedData returns the built-in San Francisco dataset. Timestamps are
// anchored relative to now so deal windows stay meaningful.
func DefaultSeedData(now time.Time) SeedData {
	created := now.AddDate(0, -6, 0)

	businesses := []domain.Business{
		{
			ID:          "biz-0001",
			Name:        "Golden Gate Grill",
			Description: "Classic American diner serving hearty breakfasts and burgers since 1987.",
			Category:    "restaurants",
			Subcategory: "american",
			Address:     "1401 Haight St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94117",
			Phone:       "4155550142",
			Email:       "hello@goldengategrill.com",
			Website:     "https://goldengategrill.com",
			ImageURL:    "https://images.brightside.app/seed/golden-gate-grill.jpg",
			Hours:       withWeekend(weekdayHours(700, 2200), 800, 2300),
			PriceLevel:  2,
			Latitude:    37.7701,
			Longitude:   -122.4460,
			Tags:        []string{"breakfast", "burgers", "family-friendly"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0002",
			Name:        "Mission Blue Coffee",
			Description: "Small-batch roaster with single-origin pour overs and house-made pastries.",
			Category:    "restaurants",
			Subcategory: "cafe",
			Address:     "2847 24th St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94110",
			Phone:       "4155550187",
			Email:       "brew@missionblue.coffee",
			Website:     "https://missionblue.coffee",
			ImageURL:    "https://images.brightside.app/seed/mission-blue-coffee.jpg",
			Hours:       withWeekend(weekdayHours(630, 1800), 700, 1700),
			PriceLevel:  2,
			Latitude:    37.7525,
			Longitude:   -122.4086,
			Tags:        []string{"coffee", "pastries", "wifi"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0003",
			Name:        "Sunset Cuts Barbershop",
			Description: "Neighborhood barbershop offering classic cuts, fades, and hot towel shaves.",
			Category:    "services",
			Subcategory: "barber",
			Address:     "1912 Irving St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94122",
			Phone:       "4155550119",
			Email:       "book@sunsetcuts.com",
			Website:     "https://sunsetcuts.com",
			Hours:       weekdayHours(900, 1900),
			PriceLevel:  1,
			Latitude:    37.7636,
			Longitude:   -122.4781,
			Tags:        []string{"haircut", "walk-ins"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0004",
			Name:        "Bayview Hardware",
			Description: "Family-owned hardware store with tools, paint, and garden supplies.",
			Category:    "shopping",
			Subcategory: "hardware",
			Address:     "3801 3rd St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94124",
			Phone:       "4155550163",
			Email:       "info@bayviewhardware.com",
			Website:     "https://bayviewhardware.com",
			Hours:       withWeekend(weekdayHours(800, 1800), 900, 1700),
			PriceLevel:  2,
			Latitude:    37.7409,
			Longitude:   -122.3884,
			Tags:        []string{"tools", "paint", "garden"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0005",
			Name:        "Noe Valley Yoga",
			Description: "Boutique yoga studio with vinyasa, restorative, and prenatal classes.",
			Category:    "health",
			Subcategory: "fitness",
			Address:     "4049 24th St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94114",
			Phone:       "4155550178",
			Email:       "namaste@noevalleyyoga.com",
			Website:     "https://noevalleyyoga.com",
			Hours:       withWeekend(weekdayHours(600, 2100), 800, 1800),
			PriceLevel:  3,
			Latitude:    37.7512,
			Longitude:   -122.4330,
			Tags:        []string{"yoga", "wellness", "classes"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0006",
			Name:        "Pho Saigon Palace",
			Description: "Vietnamese kitchen known for rich broth pho and banh mi sandwiches.",
			Category:    "restaurants",
			Subcategory: "vietnamese",
			Address:     "560 Larkin St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94102",
			Phone:       "4155550151",
			Email:       "order@phosaigonpalace.com",
			Website:     "https://phosaigonpalace.com",
			Hours:       withWeekend(weekdayHours(1000, 2100), 1000, 2200),
			PriceLevel:  1,
			Latitude:    37.7840,
			Longitude:   -122.4177,
			Tags:        []string{"pho", "banh-mi", "takeout"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0007",
			Name:        "Richmond Auto Care",
			Description: "Full-service auto repair shop specializing in brakes, oil changes, and diagnostics.",
			Category:    "services",
			Subcategory: "auto-repair",
			Address:     "5812 Geary Blvd",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94121",
			Phone:       "4155550134",
			Email:       "service@richmondautocare.com",
			Website:     "https://richmondautocare.com",
			Hours:       weekdayHours(730, 1730),
			PriceLevel:  2,
			Latitude:    37.7805,
			Longitude:   -122.4824,
			Tags:        []string{"brakes", "oil-change", "smog-check"},
			CreatedAt:   created,
		},
		{
			ID:          "biz-0008",
			Name:        "Green Apple Books",
			Description: "Beloved independent bookstore with new and used titles across three floors.",
			Category:    "shopping",
			Subcategory: "books",
			Address:     "506 Clement St",
			City:        "San Francisco",
			State:       "CA",
			Zip:         "94118",
			Phone:       "4155550196",
			Email:       "shop@greenapplebooks.com",
			Website:     "https://greenapplebooks.com",
			ImageURL:    "https://images.brightside.app/seed/green-apple-books.jpg",
			Hours:       withWeekend(weekdayHours(1000, 2200), 1000, 2200),
			PriceLevel:  2,
			Latitude:    37.7833,
			Longitude:   -122.4637,
			Tags:        []string{"books", "used-books", "local"},
			CreatedAt:   created,
		},
	}

	reviewAge := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	reviews := []domain.Review{
		{ID: "rev-0001", BusinessID: "biz-0001", UserID: "user-seed-1", UserName: "Maria G.", Rating: 4.5, Comment: "The breakfast burrito here is unreal. Service was quick even on a packed Sunday.", Helpful: 12, Verified: true, CreatedAt: reviewAge(45)},
		{ID: "rev-0002", BusinessID: "biz-0001", UserID: "user-seed-2", UserName: "Devon L.", Rating: 4.0, Comment: "Solid burgers and great milkshakes. Gets loud during game nights.", Helpful: 5, CreatedAt: reviewAge(30)},
		{ID: "rev-0003", BusinessID: "biz-0001", UserID: "user-seed-3", UserName: "Priya S.", Rating: 5.0, Comment: "Best diner in the Haight. The staff remembers regulars by name.", Helpful: 8, Verified: true, CreatedAt: reviewAge(12)},
		{ID: "rev-0004", BusinessID: "biz-0002", UserID: "user-seed-4", UserName: "Tom W.", Rating: 5.0, Comment: "Their Ethiopia pour over changed how I think about coffee. Pastries sell out early.", Helpful: 20, Verified: true, CreatedAt: reviewAge(60)},
		{ID: "rev-0005", BusinessID: "biz-0002", UserID: "user-seed-5", UserName: "Alex R.", Rating: 4.5, Comment: "Great workspace vibe on weekday mornings. Wifi is fast and outlets everywhere.", Helpful: 7, CreatedAt: reviewAge(21)},
		{ID: "rev-0006", BusinessID: "biz-0003", UserID: "user-seed-6", UserName: "Jordan K.", Rating: 4.0, Comment: "Clean fade and a proper hot towel shave. Cash discount is a nice touch.", Helpful: 3, CreatedAt: reviewAge(15)},
		{ID: "rev-0007", BusinessID: "biz-0004", UserID: "user-seed-7", UserName: "Elena M.", Rating: 4.5, Comment: "They matched a discontinued paint color from a chip. That is real service.", Helpful: 9, Verified: true, CreatedAt: reviewAge(38)},
		{ID: "rev-0008", BusinessID: "biz-0005", UserID: "user-seed-8", UserName: "Sam B.", Rating: 3.5, Comment: "Good instructors but classes book up fast. Arrive early for a decent spot.", Helpful: 2, CreatedAt: reviewAge(9)},
		{ID: "rev-0009", BusinessID: "biz-0006", UserID: "user-seed-9", UserName: "Linh T.", Rating: 5.0, Comment: "The broth simmers overnight and you can taste it. Best pho west of Larkin.", Helpful: 15, Verified: true, CreatedAt: reviewAge(27)},
		{ID: "rev-0010", BusinessID: "biz-0006", UserID: "user-seed-10", UserName: "Chris D.", Rating: 4.0, Comment: "Banh mi is generous and cheap. Seating is tight at lunch.", Helpful: 4, CreatedAt: reviewAge(6)},
		{ID: "rev-0011", BusinessID: "biz-0007", UserID: "user-seed-11", UserName: "Nina P.", Rating: 4.5, Comment: "Honest diagnosis and they showed me the worn pads before replacing anything.", Helpful: 11, Verified: true, CreatedAt: reviewAge(50)},
		{ID: "rev-0012", BusinessID: "biz-0008", UserID: "user-seed-12", UserName: "Owen F.", Rating: 5.0, Comment: "Spent two hours in the used fiction annex and left with a full bag. Dangerous place.", Helpful: 18, Verified: true, CreatedAt: reviewAge(3)},
	}

	deals := []domain.Deal{
		{
			ID:                 "deal-0001",
			BusinessID:         "biz-0001",
			Title:              "20% Off Weekday Breakfast",
			Description:        "Twenty percent off any breakfast entree, Monday through Friday before 11am.",
			DiscountPercent:    20,
			Code:               "SUNRISE20",
			TermsAndConditions: "Valid weekdays before 11am. Dine-in only. One per table.",
			ValidFrom:          now.AddDate(0, 0, -14),
			ExpiresAt:          now.AddDate(0, 1, 0),
			IsActive:           true,
			DealType:           domain.DealPercentage,
			MaxRedemptions:     100,
			CreatedAt:          now.AddDate(0, 0, -14),
		},
		{
			ID:                 "deal-0002",
			BusinessID:         "biz-0002",
			Title:              "Buy One Get One Pour Over",
			Description:        "Buy any pour over and get a second of equal or lesser value free.",
			Code:               "DOUBLEPOUR",
			TermsAndConditions: "Valid once per customer per day.",
			ValidFrom:          now.AddDate(0, 0, -7),
			ExpiresAt:          now.AddDate(0, 0, 21),
			IsActive:           true,
			DealType:           domain.DealBOGO,
			MaxRedemptions:     50,
			CreatedAt:          now.AddDate(0, 0, -7),
		},
		{
			ID:                 "deal-0003",
			BusinessID:         "biz-0007",
			Title:              "Oil Change Special",
			Description:        "Full synthetic oil change for a flat price, includes tire rotation.",
			OriginalPrice:      89.99,
			DealPrice:          59.99,
			Code:               "FRESHOIL",
			TermsAndConditions: "Most vehicles. Up to 5 quarts of synthetic oil.",
			ValidFrom:          now.AddDate(0, 0, -30),
			ExpiresAt:          now.AddDate(0, 2, 0),
			IsActive:           true,
			DealType:           domain.DealFixed,
			MaxRedemptions:     40,
			Redemptions:        6,
			CreatedAt:          now.AddDate(0, 0, -30),
		},
		{
			ID:                 "deal-0004",
			BusinessID:         "biz-0005",
			Title:              "Free First Class",
			Description:        "First vinyasa class free for new students.",
			Code:               "FIRSTFLOW",
			TermsAndConditions: "New students only. Mat rental not included.",
			ValidFrom:          now.AddDate(0, -2, 0),
			ExpiresAt:          now.AddDate(0, 0, -1),
			IsActive:           true,
			DealType:           domain.DealFreebie,
			MaxRedemptions:     200,
			Redemptions:        37,
			CreatedAt:          now.AddDate(0, -2, 0),
		},
	}

	return SeedData{Businesses: businesses, Reviews: reviews, Deals: deals}
}
