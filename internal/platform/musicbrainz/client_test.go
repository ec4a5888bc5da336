package musicbrainz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(searchURL, coverURL string) *Client {
	c := NewClient("test-agent/1.0", 1000)
	c.baseURL = searchURL
	c.coverArtURL = coverURL
	return c
}

func TestSearchReleases_ParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		assert.Contains(t, r.URL.RawQuery, "fmt=json")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 1,
			"releases": [{
				"id": "mb-1",
				"title": "Blonde",
				"status": "Official",
				"date": "2016-08-20",
				"country": "US",
				"artist-credit": [{"name": "Frank Ocean", "artist": {"id": "ar-1", "name": "Frank Ocean"}}],
				"release-group": {
					"primary-type": "Album",
					"tags": [{"name": "r&b", "count": 12}],
					"rating": {"value": 4.35, "votes-count": 120}
				}
			}]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	releases, err := c.SearchReleases(context.Background(), "blonde", 10)
	require.NoError(t, err)
	require.Len(t, releases, 1)

	rel := releases[0]
	assert.Equal(t, "mb-1", rel.ID)
	assert.Equal(t, "Blonde", rel.Title)
	assert.Equal(t, "Frank Ocean", rel.ArtistName())
	assert.Equal(t, "Album", rel.ReleaseGroup.PrimaryType)
	assert.Equal(t, 120, rel.ReleaseGroup.Rating.VotesCount)
}

func TestSearchReleases_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	_, err := c.SearchReleases(context.Background(), "blonde", 10)
	assert.Error(t, err)
}

func TestCoverArtURL_PrefersFrontImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images": [
			{"front": false, "image": "https://covers/back.jpg"},
			{"front": true, "image": "https://covers/front.jpg"}
		]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	assert.Equal(t, "https://covers/front.jpg", c.CoverArtURL(context.Background(), "mb-1"))
}

func TestCoverArtURL_FallsBackToFirstImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images": [
			{"front": false, "image": "https://covers/one.jpg"},
			{"front": false, "image": "https://covers/two.jpg"}
		]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	assert.Equal(t, "https://covers/one.jpg", c.CoverArtURL(context.Background(), "mb-1"))
}

func TestCoverArtURL_PlaceholderOnErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	assert.Equal(t, PlaceholderCoverURL, c.CoverArtURL(context.Background(), "mb-missing"))

	// No images at all behaves the same way.
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images": []}`))
	}))
	defer empty.Close()

	c = testClient(empty.URL, empty.URL)
	assert.Equal(t, PlaceholderCoverURL, c.CoverArtURL(context.Background(), "mb-bare"))
}

func TestAnnotation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "inc=annotation")
		_, _ = w.Write([]byte(`{"annotation": "Fourth studio album."}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	got, err := c.Annotation(context.Background(), "mb-1")
	require.NoError(t, err)
	assert.Equal(t, "Fourth studio album.", got)
}

func TestRuntimeMinutes_SumsTrackLengths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "inc=recordings")
		_, _ = w.Write([]byte(`{"media": [
			{"tracks": [
				{"recording": {"length": 180000}},
				{"recording": {"length": 240000}}
			]},
			{"tracks": [
				{"recording": {"length": 300000}}
			]}
		]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	got, err := c.RuntimeMinutes(context.Background(), "mb-1")
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestRuntimeMinutes_UnknownLengths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"media": [{"tracks": [{"recording": {}}]}]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL)
	got, err := c.RuntimeMinutes(context.Background(), "mb-1")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
