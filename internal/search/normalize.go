package search

import (
	"strconv"
	"strings"
	"time"
)

// FallbackReleaseDate stands in for dates MusicBrainz does not know or that
// fail to parse. Downstream code must treat it as "unknown" semantically;
// there is no structural marker distinguishing it from a real 2000-01-01
// release.
var FallbackReleaseDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseReleaseDate parses MusicBrainz date strings of decreasing precision:
// YYYY-MM-DD (first 10 characters), YYYY-MM (day defaults to 1), or YYYY
// (month and day default to 1). Anything else yields FallbackReleaseDate.
func ParseReleaseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "Unknown" {
		return FallbackReleaseDate
	}

	if len(raw) >= 10 {
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return t
		}
		return FallbackReleaseDate
	}
	if len(raw) >= 7 {
		if t, err := time.Parse("2006-01", raw[:7]); err == nil {
			return t
		}
		return FallbackReleaseDate
	}
	if len(raw) >= 4 {
		year, err := strconv.Atoi(raw[:4])
		if err != nil {
			return FallbackReleaseDate
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return FallbackReleaseDate
}

// IdentityKey derives the case-insensitive dedup key for a (title, artist)
// pair. Titles and artists arrive from multiple sources with inconsistent
// capitalization, so the key lower-cases and trims both fields.
func IdentityKey(title, artist string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(artist))
}
