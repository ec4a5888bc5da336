package importer

import "fmt"

var popularGenres = []string{
	"rock", "pop", "hip-hop", "electronic", "indie", "alternative",
	"jazz", "blues", "country", "folk", "metal", "punk", "reggae",
	"soul", "funk", "r&b", "classical", "experimental",
}

var majorLabels = []string{
	"Columbia", "Atlantic", "Capitol", "Warner", "Universal",
	"EMI", "Sony", "RCA", "Def Jam", "Interscope", "Virgin",
	"Island", "Elektra", "Geffen", "Parlophone",
}

var majorMarkets = []string{"US", "GB", "CA", "AU", "DE", "FR", "JP"}

// Queries generates the MusicBrainz search queries the import sweeps
// through: notable years, popular genres, major labels, and major
// markets, in that order.
func Queries() []string {
	var out []string

	// Classic rock era, alternative/indie golden ages, modern era.
	var years []int
	for y := 1965; y < 1980; y++ {
		years = append(years, y)
	}
	for y := 1985; y < 2000; y++ {
		years = append(years, y)
	}
	for y := 2000; y < 2025; y++ {
		years = append(years, y)
	}
	for _, year := range years {
		out = append(out,
			fmt.Sprintf("date:%d AND status:official AND type:album", year),
			fmt.Sprintf("date:%d AND status:official AND type:album AND country:US", year),
			fmt.Sprintf("date:%d AND status:official AND type:album AND country:GB", year),
		)
	}

	for _, genre := range popularGenres {
		out = append(out,
			fmt.Sprintf("tag:%s AND status:official AND type:album", genre),
			fmt.Sprintf("tag:%s AND status:official AND type:album AND date:[2000-01-01 TO 2024-12-31]", genre),
		)
	}

	for _, label := range majorLabels {
		out = append(out, fmt.Sprintf("label:%s AND status:official AND type:album", label))
	}

	for _, country := range majorMarkets {
		out = append(out, fmt.Sprintf("country:%s AND status:official AND type:album AND date:[1960-01-01 TO 2024-12-31]", country))
	}

	return out
}
