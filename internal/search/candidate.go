package search

import (
	"time"
)

// Candidate is a transient album representation used within a single
// search/import call. It is derived either from a stored album or from a
// MusicBrainz release, and is never persisted as-is.
type Candidate struct {
	MBID        string    `json:"musicbrainz_id,omitempty"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	ReleaseDate time.Time `json:"release_date"`
	CoverURL    string    `json:"cover_url,omitempty"`
	// InStore marks candidates that came from local storage; those carry the
	// stored album id.
	InStore bool   `json:"in_store"`
	AlbumID string `json:"album_id,omitempty"`
}
