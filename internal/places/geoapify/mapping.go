package geoapify

import (
	"strings"

	"github.com/brightsideapp/brightside-server/internal/places"
)

// categoryTable maps Geoapify dotted category strings to the internal
// category pair. Lookup walks from the most specific dotted prefix to the
// least, so "catering.restaurant.pizza" resolves via "catering.restaurant".
var categoryTable = map[string]places.Category{
	"catering.restaurant": {Category: "restaurants", Subcategory: "restaurant"},
	"catering.cafe":       {Category: "restaurants", Subcategory: "cafe"},
	"catering.fast_food":  {Category: "restaurants", Subcategory: "fast-food"},
	"catering.bar":        {Category: "restaurants", Subcategory: "bar"},
	"catering.pub":        {Category: "restaurants", Subcategory: "bar"},
	"catering.ice_cream":  {Category: "restaurants", Subcategory: "dessert"},
	"catering":            {Category: "restaurants", Subcategory: "restaurant"},

	"commercial.supermarket":     {Category: "shopping", Subcategory: "grocery"},
	"commercial.convenience":     {Category: "shopping", Subcategory: "convenience"},
	"commercial.clothing":        {Category: "shopping", Subcategory: "clothing"},
	"commercial.books":           {Category: "shopping", Subcategory: "books"},
	"commercial.elektronics":     {Category: "shopping", Subcategory: "electronics"},
	"commercial.furniture_and_interior": {
		Category: "shopping", Subcategory: "furniture",
	},
	"commercial.houseware_and_hardware": {
		Category: "shopping", Subcategory: "hardware",
	},
	"commercial.florist":      {Category: "shopping", Subcategory: "florist"},
	"commercial.jewelry":      {Category: "shopping", Subcategory: "jewelry"},
	"commercial.pet":          {Category: "shopping", Subcategory: "pet-store"},
	"commercial.food_and_drink.bakery": {
		Category: "restaurants", Subcategory: "bakery",
	},
	"commercial.gift_and_souvenir": {
		Category: "shopping", Subcategory: "gifts",
	},
	"commercial.toy_and_game": {Category: "shopping", Subcategory: "toys"},
	"commercial":              {Category: "shopping", Subcategory: "retail"},

	"service.beauty.hairdresser": {Category: "services", Subcategory: "salon"},
	"service.beauty":             {Category: "services", Subcategory: "salon"},
	"service.vehicle.repair":     {Category: "services", Subcategory: "auto-repair"},
	"service.vehicle.car_wash":   {Category: "services", Subcategory: "car-wash"},
	"service.cleaning.laundry":   {Category: "services", Subcategory: "laundry"},
	"service.financial":          {Category: "services", Subcategory: "bank"},
	"service.veterinary":         {Category: "services", Subcategory: "veterinary"},

	"healthcare.pharmacy":        {Category: "health", Subcategory: "pharmacy"},
	"healthcare.dentist":         {Category: "health", Subcategory: "dentist"},
	"healthcare.clinic_or_praxis": {
		Category: "health", Subcategory: "clinic",
	},
	"healthcare": {Category: "health", Subcategory: "clinic"},

	"sport.fitness": {Category: "health", Subcategory: "fitness"},

	"entertainment.cinema":        {Category: "entertainment", Subcategory: "cinema"},
	"entertainment.culture.theatre": {
		Category: "entertainment", Subcategory: "theater",
	},
	"entertainment.museum":        {Category: "entertainment", Subcategory: "museum"},
	"entertainment.bowling_alley": {Category: "entertainment", Subcategory: "bowling"},
	"entertainment":               {Category: "entertainment", Subcategory: "venue"},

	"accommodation.hotel": {Category: "services", Subcategory: "lodging"},
}

// requestCategories lists the top-level Geoapify categories requested from
// the Places API.
const requestCategories = "catering,commercial,service,healthcare,entertainment,sport.fitness,accommodation.hotel"

// mapCategories resolves a feature's category list to the internal pair,
// taking the first category that maps and falling back to the shared default.
func mapCategories(categories []string) places.Category {
	for _, dotted := range categories {
		for prefix := dotted; prefix != ""; prefix = parentCategory(prefix) {
			if cat, ok := categoryTable[prefix]; ok {
				return cat
			}
		}
	}
	return places.FallbackCategory
}

func parentCategory(dotted string) string {
	idx := strings.LastIndex(dotted, ".")
	if idx < 0 {
		return ""
	}
	return dotted[:idx]
}
