package validation

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// Result is the outcome of validating a single user-entered field.
// Validators apply their rules in order; the first failing rule wins.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Message: msg}
}

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	namePattern    = regexp.MustCompile(`^[\p{L}\p{N} .\-]+$`)
)

// hasRepeatedRun reports whether s contains 6 or more identical consecutive
// characters. RE2 has no backreferences, so this is a plain scan.
func hasRepeatedRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 6 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// Email validates an email address.
func Email(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return fail("email is required")
	}
	if strings.Count(input, "@") != 1 {
		return fail("email must contain exactly one @")
	}
	local, host, _ := strings.Cut(input, "@")
	if local == "" || host == "" {
		return fail("email is missing its local or domain part")
	}
	if !strings.Contains(host, ".") {
		return fail("email domain must contain a dot")
	}
	if !emailPattern.MatchString(input) {
		return fail("email format is invalid")
	}
	return ok()
}

// Phone validates a US phone number in any common formatting.
func Phone(input string) Result {
	if strings.TrimSpace(input) == "" {
		return fail("phone number is required")
	}

	var digits []byte
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}

	if len(digits) < 10 || len(digits) > 11 {
		return fail("phone number must have 10 or 11 digits")
	}
	if len(digits) == 11 {
		if digits[0] != '1' {
			return fail("11-digit phone numbers must start with 1")
		}
		digits = digits[1:]
	}
	if digits[0] == '0' || digits[0] == '1' {
		return fail("area code cannot start with 0 or 1")
	}
	return ok()
}

// ZIP validates a US ZIP code (5 or 9 digits, separators allowed).
func ZIP(input string) Result {
	if strings.TrimSpace(input) == "" {
		return fail("ZIP code is required")
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, input)

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return fail("ZIP code must contain only digits")
		}
	}
	if len(cleaned) != 5 && len(cleaned) != 9 {
		return fail("ZIP code must be 5 or 9 digits")
	}

	prefix, err := strconv.Atoi(cleaned[:5])
	if err != nil || prefix < 501 || prefix > 99950 {
		return fail("ZIP code is out of the valid range")
	}
	return ok()
}

// ReviewText validates a review comment: length bounds plus spam heuristics
// (character runs, URLs, HTML fragments, shouting).
func ReviewText(input string) Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fail("review text is required")
	}
	length := utf8.RuneCountInString(trimmed)
	if length < 10 {
		return fail("review must be at least 10 characters")
	}
	if length > 500 {
		return fail("review must be at most 500 characters")
	}
	if hasRepeatedRun(trimmed) {
		return fail("review looks like spam (repeated characters)")
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "http://") || strings.Contains(lower, "https://") || strings.Contains(lower, "www.") {
		return fail("review must not contain links")
	}
	if htmlTagPattern.MatchString(trimmed) {
		return fail("review must not contain HTML")
	}
	if length > 20 && uppercaseRatio(trimmed) > 0.7 {
		return fail("review must not be mostly uppercase")
	}
	return ok()
}

// uppercaseRatio returns the fraction of letters that are uppercase.
func uppercaseRatio(s string) float64 {
	var letters, upper int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// Rating validates a star rating: 0.5-5.0 in half-star steps.
func Rating(rating float64) Result {
	if math.IsNaN(rating) {
		return fail("rating must be a number")
	}
	if !domain.ValidRating(rating) {
		return fail("rating must be between 0.5 and 5 in half-star steps")
	}
	return ok()
}

// DisplayName validates a user display name.
func DisplayName(input string) Result {
	trimmed := strings.TrimSpace(input)
	if n := utf8.RuneCountInString(trimmed); n < 2 || n > 50 {
		return fail("display name must be 2-50 characters")
	}
	if !namePattern.MatchString(trimmed) {
		return fail("display name may only contain letters, digits, spaces, periods, and hyphens")
	}
	return ok()
}

// SearchQuery validates a search query and returns a sanitized copy with
// markup-prone characters stripped. An empty query is valid and means
// "return everything".
func SearchQuery(input string) (Result, string) {
	if input == "" {
		return ok(), ""
	}
	if utf8.RuneCountInString(input) > 100 {
		return fail("search query must be at most 100 characters"), ""
	}
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', '[', ']', '\\':
			return -1
		}
		return r
	}, input)
	return ok(), sanitized
}

// URL validates an optional website URL. An empty value is valid. A missing
// scheme is tolerated by assuming https.
func URL(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return ok()
	}
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	parsed, err := url.Parse(input)
	if err != nil || parsed.Hostname() == "" {
		return fail("website URL is invalid")
	}
	host := parsed.Hostname()
	lastDot := strings.LastIndex(host, ".")
	if lastDot < 0 || len(host)-lastDot-1 < 2 {
		return fail("website URL must have a valid domain")
	}
	return ok()
}

// FolderName validates a bookmark folder name.
func FolderName(input string) Result {
	trimmed := strings.TrimSpace(input)
	if n := utf8.RuneCountInString(trimmed); n < 1 || n > 30 {
		return fail(fmt.Sprintf("folder name must be 1-30 characters, got %d", n))
	}
	return ok()
}
