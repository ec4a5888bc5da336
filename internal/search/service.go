package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"stereo/internal/album"
	"stereo/internal/platform/musicbrainz"
)

const (
	// DefaultLimit is the result budget used when the caller does not ask
	// for one.
	DefaultLimit = 10
	// MaxLimit caps the result budget.
	MaxLimit = 50

	unknownArtist = "Unknown Artist"
)

var (
	// ErrQueryTooShort is returned for queries under 2 trimmed characters.
	ErrQueryTooShort = errors.New("query must be at least 2 characters")
	// ErrInvalidCandidate is returned when an import candidate is missing
	// title or artist.
	ErrInvalidCandidate = errors.New("candidate must have title and artist")
	// ErrExternalLookup wraps MusicBrainz failures during an explicit
	// add-by-id, where the error cannot be silently downgraded.
	ErrExternalLookup = errors.New("external lookup failed")
)

// MetadataClient is the slice of the MusicBrainz client the engine needs.
type MetadataClient interface {
	SearchReleases(ctx context.Context, query string, limit int) ([]musicbrainz.Release, error)
	GetRelease(ctx context.Context, mbid string) (*musicbrainz.Release, error)
	CoverArtURL(ctx context.Context, mbid string) string
	Annotation(ctx context.Context, mbid string) (string, error)
	RuntimeMinutes(ctx context.Context, mbid string) (int, error)
}

// SuggestionSource provides prefix completions for autocomplete.
type SuggestionSource interface {
	TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	ArtistSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	UsernameSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
}

// Suggestions is the autocomplete payload: catalog titles and artists plus
// usernames completing the typed prefix.
type Suggestions struct {
	Albums  []string `json:"albums"`
	Artists []string `json:"artists"`
	Users   []string `json:"users"`
}

const (
	albumSuggestionLimit = 5
	userSuggestionLimit  = 3
)

// Service is the search/import reconciliation engine: it merges local catalog
// rows with live MusicBrainz candidates, deduplicates them by identity key,
// and imports candidates idempotently. It holds no state across calls.
type Service struct {
	albums  album.Repository
	suggest SuggestionSource
	mb      MetadataClient
}

func NewService(albums album.Repository, suggest SuggestionSource, mb MetadataClient) *Service {
	return &Service{albums: albums, suggest: suggest, mb: mb}
}

// Suggest returns autocomplete completions for a typed prefix. Unlike Search
// it never goes external; completions come from local rows only.
func (s *Service) Suggest(ctx context.Context, prefix string) (Suggestions, error) {
	out := Suggestions{
		Albums:  []string{},
		Artists: []string{},
		Users:   []string{},
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return out, ErrQueryTooShort
	}

	titles, err := s.suggest.TitleSuggestions(ctx, prefix, albumSuggestionLimit)
	if err != nil {
		return out, err
	}
	artists, err := s.suggest.ArtistSuggestions(ctx, prefix, albumSuggestionLimit)
	if err != nil {
		return out, err
	}
	users, err := s.suggest.UsernameSuggestions(ctx, prefix, userSuggestionLimit)
	if err != nil {
		return out, err
	}

	out.Albums = append(out.Albums, titles...)
	out.Artists = append(out.Artists, artists...)
	out.Users = append(out.Users, users...)
	return out, nil
}

// Search runs the reconciliation flow for one query. Local matches always
// come first; external candidates follow in MusicBrainz order, after score
// and duplicate filtering. A MusicBrainz failure degrades to local-only
// results rather than failing the search.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]Candidate, error) {
	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return nil, ErrQueryTooShort
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	local, err := s.albums.SearchByText(ctx, q, limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(local))
	results := make([]Candidate, 0, limit)
	for _, a := range local {
		seen[IdentityKey(a.Title, a.Artist)] = true
		results = append(results, Candidate{
			MBID:        derefOr(a.MBID, ""),
			Title:       a.Title,
			Artist:      a.Artist,
			ReleaseDate: a.ReleaseDate,
			CoverURL:    a.CoverURL,
			InStore:     true,
			AlbumID:     a.ID,
		})
	}

	remaining := limit - len(results)
	if remaining <= 0 {
		return results, nil
	}

	releases, err := s.mb.SearchReleases(ctx, q, remaining)
	if err != nil {
		log.Printf("search: musicbrainz lookup failed for %q: %v", q, err)
		return results, nil
	}

	for _, rel := range releases {
		if len(results) >= limit {
			break
		}
		if Score(rel, 0) < MinSearchScore {
			continue
		}
		artist := rel.ArtistName()
		if artist == "" {
			artist = unknownArtist
		}
		key := IdentityKey(rel.Title, artist)
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, Candidate{
			MBID:        rel.ID,
			Title:       rel.Title,
			Artist:      artist,
			ReleaseDate: ParseReleaseDate(rel.Date),
			CoverURL:    s.mb.CoverArtURL(ctx, rel.ID),
		})
	}
	return results, nil
}

// AddFromCandidate imports a candidate into the catalog. The operation is
// idempotent on the case-insensitive (title, artist) identity: re-importing
// returns the stored album instead of creating a second row.
func (s *Service) AddFromCandidate(ctx context.Context, c Candidate) (album.Album, error) {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Artist) == "" {
		return album.Album{}, ErrInvalidCandidate
	}

	coverURL := c.CoverURL
	if coverURL == "" {
		coverURL = musicbrainz.PlaceholderCoverURL
	}
	releaseDate := c.ReleaseDate
	if releaseDate.IsZero() {
		releaseDate = FallbackReleaseDate
	}

	a := album.Album{
		Title:       c.Title,
		Artist:      c.Artist,
		ReleaseDate: releaseDate,
		CoverURL:    coverURL,
	}
	if c.MBID != "" {
		a.MBID = &c.MBID
	}

	created, err := s.albums.InsertIfAbsent(ctx, &a)
	if err != nil {
		return album.Album{}, err
	}
	if created {
		log.Printf("search: imported album %q by %q (%s)", a.Title, a.Artist, a.ID)
	}
	return a, nil
}

// AddByMBID imports an album given only a MusicBrainz release id. The
// release detail is re-fetched; a lookup failure is surfaced to the caller
// since the user explicitly requested this one item. Existence is still
// checked by identity key, so duplicates that entered through other sources
// are caught.
func (s *Service) AddByMBID(ctx context.Context, mbid string) (album.Album, error) {
	rel, err := s.mb.GetRelease(ctx, mbid)
	if err != nil {
		return album.Album{}, fmt.Errorf("%w: %v", ErrExternalLookup, err)
	}

	artist := rel.ArtistName()
	if artist == "" {
		artist = unknownArtist
	}

	if existing, err := s.albums.FindByIdentity(ctx, rel.Title, artist); err == nil {
		return existing, nil
	} else if !errors.Is(err, album.ErrNotFound) {
		return album.Album{}, err
	}

	a := album.Album{
		Title:       rel.Title,
		Artist:      artist,
		ReleaseDate: ParseReleaseDate(rel.Date),
		CoverURL:    s.mb.CoverArtURL(ctx, rel.ID),
		MBID:        &rel.ID,
	}
	if description, err := s.mb.Annotation(ctx, rel.ID); err == nil {
		a.Description = description
	}
	if runtime, err := s.mb.RuntimeMinutes(ctx, rel.ID); err == nil && runtime > 0 {
		a.RuntimeMinutes = &runtime
	}

	if _, err := s.albums.InsertIfAbsent(ctx, &a); err != nil {
		return album.Album{}, err
	}
	return a, nil
}

func derefOr(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}
