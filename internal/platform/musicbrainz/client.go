package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// PlaceholderCoverURL is returned whenever the Cover Art Archive has nothing
// usable for a release.
const PlaceholderCoverURL = "https://via.placeholder.com/500x500?text=No+Cover+Art"

type Client struct {
	httpClient  *http.Client
	coverClient *http.Client
	userAgent   string
	baseURL     string
	coverArtURL string
	limiter     *rate.Limiter
}

// NewClient builds a MusicBrainz WS/2 client. MusicBrainz asks anonymous
// clients to stay at or below one request per second, so rps should normally
// be 1.
func NewClient(userAgent string, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		coverClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		userAgent:   userAgent,
		baseURL:     "https://musicbrainz.org/ws/2",
		coverArtURL: "https://coverartarchive.org",
		limiter:     rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResponse matches /ws/2/release?fmt=json
type SearchResponse struct {
	Count    int       `json:"count"`
	Releases []Release `json:"releases"`
}

type Release struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Status         string         `json:"status"`
	Date           string         `json:"date"`
	Country        string         `json:"country"`
	Disambiguation string         `json:"disambiguation"`
	ArtistCredit   []ArtistCredit `json:"artist-credit"`
	ReleaseGroup   ReleaseGroup   `json:"release-group"`
}

type ArtistCredit struct {
	Name   string `json:"name"`
	Artist struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"artist"`
}

type ReleaseGroup struct {
	ID          string `json:"id"`
	PrimaryType string `json:"primary-type"`
	Tags        []Tag  `json:"tags"`
	Rating      Rating `json:"rating"`
}

type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Rating struct {
	Value      float64 `json:"value"`
	VotesCount int     `json:"votes-count"`
}

// ArtistName returns the first credited artist, or "" when the payload has no
// artist-credit block.
func (r Release) ArtistName() string {
	if len(r.ArtistCredit) == 0 {
		return ""
	}
	if name := r.ArtistCredit[0].Artist.Name; name != "" {
		return name
	}
	return r.ArtistCredit[0].Name
}

// SearchReleases queries the release search endpoint. Release-group data,
// tags and ratings are included so candidates can be popularity-scored
// without extra lookups.
func (c *Client) SearchReleases(ctx context.Context, query string, limit int) ([]Release, error) {
	u := fmt.Sprintf("%s/release?query=%s&fmt=json&limit=%d&inc=release-groups+tags+ratings",
		c.baseURL, url.QueryEscape(query), limit)

	var res SearchResponse
	if err := c.get(ctx, c.httpClient, u, &res); err != nil {
		return nil, err
	}
	return res.Releases, nil
}

// GetRelease looks up a single release by its MBID.
func (c *Client) GetRelease(ctx context.Context, mbid string) (*Release, error) {
	u := fmt.Sprintf("%s/release/%s?fmt=json&inc=artist-credits+release-groups+tags+ratings",
		c.baseURL, url.PathEscape(mbid))

	var res Release
	if err := c.get(ctx, c.httpClient, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type coverArtResponse struct {
	Images []struct {
		Front bool   `json:"front"`
		Image string `json:"image"`
	} `json:"images"`
}

// CoverArtURL asks the Cover Art Archive for a release's cover. It prefers
// the image flagged front, falls back to the first listed image, and never
// fails the caller: any error yields the placeholder URL.
func (c *Client) CoverArtURL(ctx context.Context, mbid string) string {
	u := fmt.Sprintf("%s/release/%s", c.coverArtURL, url.PathEscape(mbid))

	var res coverArtResponse
	if err := c.get(ctx, c.coverClient, u, &res); err != nil {
		return PlaceholderCoverURL
	}
	for _, img := range res.Images {
		if img.Front {
			return img.Image
		}
	}
	if len(res.Images) > 0 {
		return res.Images[0].Image
	}
	return PlaceholderCoverURL
}

type annotationResponse struct {
	Annotation string `json:"annotation"`
}

// Annotation fetches the free-text release annotation, used as an album
// description. Missing annotations are not an error.
func (c *Client) Annotation(ctx context.Context, mbid string) (string, error) {
	u := fmt.Sprintf("%s/release/%s?inc=annotation&fmt=json", c.baseURL, url.PathEscape(mbid))

	var res annotationResponse
	if err := c.get(ctx, c.coverClient, u, &res); err != nil {
		return "", err
	}
	return res.Annotation, nil
}

type recordingsResponse struct {
	Media []struct {
		Tracks []struct {
			Recording struct {
				Length int `json:"length"`
			} `json:"recording"`
		} `json:"tracks"`
	} `json:"media"`
}

// RuntimeMinutes sums recording lengths across all media of a release and
// returns the total in minutes. Returns 0 when track lengths are unknown.
func (c *Client) RuntimeMinutes(ctx context.Context, mbid string) (int, error) {
	u := fmt.Sprintf("%s/release/%s?inc=recordings&fmt=json", c.baseURL, url.PathEscape(mbid))

	var res recordingsResponse
	if err := c.get(ctx, c.httpClient, u, &res); err != nil {
		return 0, err
	}
	totalMs := 0
	for _, medium := range res.Media {
		for _, track := range medium.Tracks {
			totalMs += track.Recording.Length
		}
	}
	return totalMs / 60000, nil
}

func (c *Client) get(ctx context.Context, client *http.Client, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
