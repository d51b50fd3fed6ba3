package store

// Fixed storage keys. These are a compatibility surface: each key holds one
// JSON-serialized collection snapshot and must not be renamed.
const (
	KeyBusinesses = "bsbb_businesses"
	KeyReviews    = "bsbb_reviews"
	KeyBookmarks  = "bsbb_bookmarks"
	KeyDeals      = "bsbb_deals"
	KeySession    = "bsbb_session"
)

// CollectionKeys lists every persisted key, in seed order.
var CollectionKeys = []string{
	KeyBusinesses,
	KeyReviews,
	KeyBookmarks,
	KeyDeals,
	KeySession,
}
