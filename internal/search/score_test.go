package search

import (
	"testing"

	"stereo/internal/platform/musicbrainz"

	"github.com/stretchr/testify/assert"
)

func officialAlbum() musicbrainz.Release {
	return musicbrainz.Release{
		Status: "Official",
		ReleaseGroup: musicbrainz.ReleaseGroup{
			PrimaryType: "Album",
		},
	}
}

func TestScore_StatusAndType(t *testing.T) {
	base := musicbrainz.Release{}
	assert.Equal(t, 0, Score(base, 0))

	official := base
	official.Status = "Official"
	assert.Equal(t, 25, Score(official, 0))

	assert.Equal(t, 45, Score(officialAlbum(), 0))

	bootleg := base
	bootleg.Status = "Bootleg"
	assert.Equal(t, 0, Score(bootleg, 0), "negative sums clamp to zero")

	ep := base
	ep.ReleaseGroup.PrimaryType = "EP"
	assert.Equal(t, 5, Score(ep, 0))
}

func TestScore_BootlegStaysBelowSearchThreshold(t *testing.T) {
	// A bootleg live record with no engagement signals must never reach
	// the candidate pool.
	r := musicbrainz.Release{
		Status: "Bootleg",
		ReleaseGroup: musicbrainz.ReleaseGroup{
			PrimaryType: "Live",
		},
		Disambiguation: "audience recording",
	}
	assert.Less(t, Score(r, 0), MinSearchScore)
}

func TestScore_TagBuckets(t *testing.T) {
	makeTags := func(n int) []musicbrainz.Tag {
		tags := make([]musicbrainz.Tag, n)
		for i := range tags {
			tags[i] = musicbrainz.Tag{Name: "rock"}
		}
		return tags
	}

	base := officialAlbum()
	baseScore := Score(base, 0)

	withTags := func(n int) int {
		r := base
		r.ReleaseGroup.Tags = makeTags(n)
		return Score(r, 0)
	}

	assert.Equal(t, baseScore+5, withTags(1))
	assert.Equal(t, baseScore+5, withTags(5))
	assert.Equal(t, baseScore+10, withTags(6))
	assert.Equal(t, baseScore+15, withTags(11))
}

func TestScore_RatingBuckets(t *testing.T) {
	base := officialAlbum()
	baseScore := Score(base, 0)

	withRating := func(value float64, votes int) int {
		r := base
		r.ReleaseGroup.Rating = musicbrainz.Rating{Value: value, VotesCount: votes}
		return Score(r, 0)
	}

	assert.Equal(t, baseScore+3, withRating(3.0, 5))
	assert.Equal(t, baseScore+8, withRating(3.0, 20))
	assert.Equal(t, baseScore+15, withRating(3.5, 100))
	assert.Equal(t, baseScore+25, withRating(4.5, 100), "well-voted and highly rated")
}

func TestScore_ArtistReleaseCount(t *testing.T) {
	base := officialAlbum()
	baseScore := Score(base, 0)

	assert.Equal(t, baseScore, Score(base, 0))
	assert.Equal(t, baseScore, Score(base, 5))
	assert.Equal(t, baseScore+2, Score(base, 6))
	assert.Equal(t, baseScore+5, Score(base, 11))
	assert.Equal(t, baseScore+10, Score(base, 21))
}

func TestScore_Era(t *testing.T) {
	base := officialAlbum()
	baseScore := Score(base, 0)

	classic := base
	classic.Date = "1975-06-01"
	assert.Equal(t, baseScore+5, Score(classic, 0))

	inBetween := base
	inBetween.Date = "2005-06-01"
	assert.Equal(t, baseScore, Score(inBetween, 0), "post-2000 but not recent earns nothing")

	badDate := base
	badDate.Date = "19xx"
	assert.Equal(t, baseScore, Score(badDate, 0))
}

func TestScore_CountryAndDisambiguation(t *testing.T) {
	base := officialAlbum()
	baseScore := Score(base, 0)

	us := base
	us.Country = "US"
	assert.Equal(t, baseScore+5, Score(us, 0))

	jp := base
	jp.Country = "JP"
	assert.Equal(t, baseScore+3, Score(jp, 0))

	obscure := base
	obscure.Disambiguation = "2nd pressing"
	assert.Equal(t, baseScore-3, Score(obscure, 0))
}

func TestScore_ClampedToHundred(t *testing.T) {
	r := officialAlbum()
	r.Country = "US"
	r.Date = "1985-01-01"
	r.ReleaseGroup.Rating = musicbrainz.Rating{Value: 4.8, VotesCount: 500}
	tags := make([]musicbrainz.Tag, 20)
	r.ReleaseGroup.Tags = tags

	got := Score(r, 50)
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, MinImportScore)
}
