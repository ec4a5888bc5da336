package album

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an album is not found.
	ErrNotFound = errors.New("album not found")
	// ErrAlreadyExists is returned when a direct insert collides with the
	// identity index. The import path upserts instead and never sees this.
	ErrAlreadyExists = errors.New("album already exists")
)

// Album represents a persisted album. The generated id is the primary key;
// the practical uniqueness key at import time is the case-insensitive
// (title, artist) pair, enforced by a unique index in storage.
type Album struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Artist         string    `json:"artist"`
	ReleaseDate    time.Time `json:"release_date"`
	CoverURL       string    `json:"cover_url"`
	Description    string    `json:"description,omitempty"`
	RuntimeMinutes *int      `json:"runtime_minutes,omitempty"`
	MBID           *string   `json:"musicbrainz_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
