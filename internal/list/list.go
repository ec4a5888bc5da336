package list

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("list not found")
	ErrItemNotFound  = errors.New("list item not found")
	ErrAlbumNotFound = errors.New("album not found")
	ErrForbidden     = errors.New("not the list owner")
	ErrDuplicateItem = errors.New("album is already in this list")
)

// List is a user-curated collection of albums, public or private. Ranked
// lists order their items by position; unranked lists by recency of
// addition.
type List struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	IsRanked    bool       `json:"is_ranked"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	ItemCount   int        `json:"item_count"`
}

type Item struct {
	ID       string       `json:"id"`
	ListID   string       `json:"list_id"`
	AlbumID  string       `json:"album_id"`
	Position *int         `json:"position,omitempty"`
	Notes    string       `json:"notes,omitempty"`
	AddedAt  time.Time    `json:"added_at"`
	Album    AlbumSummary `json:"album"`
}

// AlbumSummary is the slice of album data embedded in list item responses.
type AlbumSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	CoverURL string `json:"cover_url"`
}

// Detail is a list together with its items in display order.
type Detail struct {
	List
	Items []Item `json:"items"`
}
