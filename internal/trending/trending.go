// Package trending maintains a weekly snapshot of the most active albums,
// ranked by recent rating volume.
package trending

import (
	"errors"
	"time"
)

var (
	ErrEmpty         = errors.New("no trending albums")
	ErrAlbumNotFound = errors.New("album not found")
)

type Entry struct {
	ID        string    `json:"id"`
	AlbumID   string    `json:"album_id"`
	Rank      int       `json:"rank"`
	WeekStart time.Time `json:"week_start"`
	Album     Album     `json:"album"`
}

// Album is the denormalized album data carried on each trending entry.
type Album struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	CoverURL string `json:"cover_url"`
}
