package search

import (
	"strconv"
	"strings"
	"time"

	"stereo/internal/platform/musicbrainz"
)

const (
	// MinSearchScore is the inclusion threshold for the interactive-search
	// candidate pool.
	MinSearchScore = 30
	// MinImportScore is the stricter commit threshold used by the bulk
	// importer.
	MinImportScore = 35
)

// Score estimates how popular/relevant a MusicBrainz release is, on a 0-100
// scale. It is a pure weighted sum of independent signals; each contribution
// is additive and the result is clamped at the end. artistReleaseCount is an
// optional artist-notability proxy (0 when unknown).
func Score(r musicbrainz.Release, artistReleaseCount int) int {
	score := 0

	switch strings.ToLower(r.Status) {
	case "official":
		score += 25
	case "promotion", "bootleg":
		score -= 10
	}

	switch strings.ToLower(r.ReleaseGroup.PrimaryType) {
	case "album":
		score += 20
	case "compilation", "live":
		score -= 5
	case "ep", "single":
		score += 5
	}

	switch tagCount := len(r.ReleaseGroup.Tags); {
	case tagCount > 10:
		score += 15
	case tagCount > 5:
		score += 10
	case tagCount > 0:
		score += 5
	}

	rating := r.ReleaseGroup.Rating
	switch {
	case rating.VotesCount > 50:
		score += 15
		if rating.Value >= 4.0 {
			score += 10
		}
	case rating.VotesCount > 10:
		score += 8
	case rating.VotesCount > 0:
		score += 3
	}

	switch {
	case artistReleaseCount > 20:
		score += 10
	case artistReleaseCount > 10:
		score += 5
	case artistReleaseCount > 5:
		score += 2
	}

	if len(r.Date) >= 4 {
		if year, err := strconv.Atoi(r.Date[:4]); err == nil {
			currentYear := time.Now().Year()
			if currentYear-year <= 5 {
				score += 8
			} else if year >= 1960 && year <= 2000 {
				score += 5
			}
		}
	}

	switch r.Country {
	case "US", "GB", "CA", "AU":
		score += 5
	case "DE", "FR", "JP", "NL":
		score += 3
	}

	if r.Disambiguation != "" {
		score -= 3
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
