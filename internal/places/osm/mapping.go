package osm

import "github.com/brightsideapp/brightside-server/internal/places"

// categoryTable maps OSM tag values to the internal category pair. The key is
// "<tagkey>:<tagvalue>" across the amenity, shop, leisure, healthcare, and
// tourism keys.
var categoryTable = map[string]places.Category{
	// amenity
	"amenity:restaurant": {Category: "restaurants", Subcategory: "restaurant"},
	"amenity:cafe":       {Category: "restaurants", Subcategory: "cafe"},
	"amenity:fast_food":  {Category: "restaurants", Subcategory: "fast-food"},
	"amenity:bar":        {Category: "restaurants", Subcategory: "bar"},
	"amenity:pub":        {Category: "restaurants", Subcategory: "bar"},
	"amenity:ice_cream":  {Category: "restaurants", Subcategory: "dessert"},
	"amenity:pharmacy":   {Category: "health", Subcategory: "pharmacy"},
	"amenity:dentist":    {Category: "health", Subcategory: "dentist"},
	"amenity:doctors":    {Category: "health", Subcategory: "clinic"},
	"amenity:clinic":     {Category: "health", Subcategory: "clinic"},
	"amenity:veterinary": {Category: "services", Subcategory: "veterinary"},
	"amenity:bank":       {Category: "services", Subcategory: "bank"},
	"amenity:fuel":       {Category: "services", Subcategory: "gas-station"},
	"amenity:car_wash":   {Category: "services", Subcategory: "car-wash"},
	"amenity:cinema":     {Category: "entertainment", Subcategory: "cinema"},
	"amenity:theatre":    {Category: "entertainment", Subcategory: "theater"},

	// shop
	"shop:supermarket":   {Category: "shopping", Subcategory: "grocery"},
	"shop:convenience":   {Category: "shopping", Subcategory: "convenience"},
	"shop:bakery":        {Category: "restaurants", Subcategory: "bakery"},
	"shop:clothes":       {Category: "shopping", Subcategory: "clothing"},
	"shop:shoes":         {Category: "shopping", Subcategory: "clothing"},
	"shop:books":         {Category: "shopping", Subcategory: "books"},
	"shop:electronics":   {Category: "shopping", Subcategory: "electronics"},
	"shop:furniture":     {Category: "shopping", Subcategory: "furniture"},
	"shop:hardware":      {Category: "shopping", Subcategory: "hardware"},
	"shop:doityourself":  {Category: "shopping", Subcategory: "hardware"},
	"shop:florist":       {Category: "shopping", Subcategory: "florist"},
	"shop:jewelry":       {Category: "shopping", Subcategory: "jewelry"},
	"shop:pet":           {Category: "shopping", Subcategory: "pet-store"},
	"shop:hairdresser":   {Category: "services", Subcategory: "salon"},
	"shop:beauty":        {Category: "services", Subcategory: "salon"},
	"shop:car_repair":    {Category: "services", Subcategory: "auto-repair"},
	"shop:laundry":       {Category: "services", Subcategory: "laundry"},
	"shop:dry_cleaning":  {Category: "services", Subcategory: "laundry"},
	"shop:optician":      {Category: "health", Subcategory: "optician"},
	"shop:sports":        {Category: "shopping", Subcategory: "sporting-goods"},
	"shop:toys":          {Category: "shopping", Subcategory: "toys"},
	"shop:gift":          {Category: "shopping", Subcategory: "gifts"},
	"shop:alcohol":       {Category: "shopping", Subcategory: "liquor"},
	"shop:deli":          {Category: "restaurants", Subcategory: "deli"},
	"shop:confectionery": {Category: "restaurants", Subcategory: "dessert"},

	// leisure
	"leisure:fitness_centre": {Category: "health", Subcategory: "fitness"},
	"leisure:sports_centre":  {Category: "health", Subcategory: "fitness"},
	"leisure:bowling_alley":  {Category: "entertainment", Subcategory: "bowling"},
	"leisure:amusement_arcade": {
		Category: "entertainment", Subcategory: "arcade",
	},

	// healthcare
	"healthcare:physiotherapist": {Category: "health", Subcategory: "physical-therapy"},
	"healthcare:psychotherapist": {Category: "health", Subcategory: "therapy"},
	"healthcare:dentist":         {Category: "health", Subcategory: "dentist"},

	// tourism
	"tourism:hotel":   {Category: "services", Subcategory: "lodging"},
	"tourism:museum":  {Category: "entertainment", Subcategory: "museum"},
	"tourism:gallery": {Category: "entertainment", Subcategory: "gallery"},
}

// tagKeys are the OSM keys consulted for category mapping, in priority order.
var tagKeys = []string{"amenity", "shop", "leisure", "healthcare", "tourism"}

// mapCategory resolves OSM tags to the internal category pair, falling back
// to the shared default for unmapped tags.
func mapCategory(tags map[string]string) places.Category {
	for _, key := range tagKeys {
		value, ok := tags[key]
		if !ok {
			continue
		}
		if cat, ok := categoryTable[key+":"+value]; ok {
			return cat
		}
	}
	return places.FallbackCategory
}
