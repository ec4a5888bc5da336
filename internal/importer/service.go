package importer

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"stereo/internal/album"
	"stereo/internal/platform/musicbrainz"
	"stereo/internal/search"
)

// topPerQuery caps how many scored candidates one query contributes.
const topPerQuery = 20

type Config struct {
	TargetCount int
	SearchLimit int
	MinScore    int
	QueryDelay  time.Duration
}

// MetadataClient is the slice of the MusicBrainz client the importer needs.
type MetadataClient interface {
	SearchReleases(ctx context.Context, query string, limit int) ([]musicbrainz.Release, error)
	CoverArtURL(ctx context.Context, mbid string) string
}

// Service sweeps MusicBrainz with generated queries and commits only
// releases popular enough to be worth cataloging.
type Service struct {
	mb         MetadataClient
	albums     album.Repository
	importRepo Repository
	cfg        Config
}

func NewService(mb MetadataClient, albums album.Repository, importRepo Repository, cfg Config) *Service {
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = 2000
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 50
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = search.MinImportScore
	}
	if cfg.QueryDelay <= 0 {
		cfg.QueryDelay = 1500 * time.Millisecond
	}
	return &Service{
		mb:         mb,
		albums:     albums,
		importRepo: importRepo,
		cfg:        cfg,
	}
}

func (s *Service) Run(ctx context.Context) (err error) {
	queries := Queries()

	run := &Run{
		Status:            "RUNNING",
		ConfigTargetCount: s.cfg.TargetCount,
		ConfigMinScore:    s.cfg.MinScore,
		QueriesTotal:      len(queries),
		StartedAt:         time.Now(),
	}
	runID, rErr := s.importRepo.CreateRun(ctx, run)
	if rErr != nil {
		return rErr
	}
	run.ID = runID

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}

		if run.Error != "" {
			run.Status = "FAILED"
		} else {
			run.Status = "COMPLETED"
		}
		if updateErr := s.importRepo.UpdateRun(context.WithoutCancel(ctx), run); updateErr != nil {
			log.Printf("Failed to update import run %s: %v", run.ID, updateErr)
		}
	}()

	log.Printf("Starting popularity-filtered import: target=%d queries=%d", s.cfg.TargetCount, len(queries))

	for _, q := range queries {
		if run.Imported >= s.cfg.TargetCount {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		releases, sErr := s.mb.SearchReleases(ctx, q, s.cfg.SearchLimit)
		if sErr != nil {
			// A single failed query does not stop the sweep.
			log.Printf("Search failed for %q: %v", q, sErr)
			continue
		}
		run.QueriesRun++

		for _, rel := range s.topCandidates(releases) {
			if run.Imported >= s.cfg.TargetCount {
				break
			}
			if !s.shouldImport(rel) {
				run.Rejected++
				continue
			}
			created, iErr := s.importRelease(ctx, rel)
			if iErr != nil {
				log.Printf("Failed to import %q: %v", rel.Title, iErr)
				continue
			}
			if created {
				run.Imported++
			} else {
				run.Rejected++
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.QueryDelay):
		}
	}

	log.Printf("Import complete: imported=%d rejected=%d", run.Imported, run.Rejected)
	return nil
}

// topCandidates scores a result page, drops everything under the search
// pool threshold, and keeps the best few.
func (s *Service) topCandidates(releases []musicbrainz.Release) []musicbrainz.Release {
	type scored struct {
		release musicbrainz.Release
		score   int
	}
	pool := make([]scored, 0, len(releases))
	for _, rel := range releases {
		if sc := search.Score(rel, 0); sc >= search.MinSearchScore {
			pool = append(pool, scored{release: rel, score: sc})
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })
	if len(pool) > topPerQuery {
		pool = pool[:topPerQuery]
	}

	out := make([]musicbrainz.Release, len(pool))
	for i, sc := range pool {
		out[i] = sc.release
	}
	return out
}

// shouldImport is the final commit gate: basic quality checks plus the
// stricter import score threshold.
func (s *Service) shouldImport(rel musicbrainz.Release) bool {
	title := strings.TrimSpace(rel.Title)
	if len(title) < 2 {
		return false
	}

	artist := strings.ToLower(rel.ArtistName())
	if len(artist) < 2 || strings.Contains(artist, "various") {
		return false
	}

	return search.Score(rel, 0) >= s.cfg.MinScore
}

func (s *Service) importRelease(ctx context.Context, rel musicbrainz.Release) (bool, error) {
	mbid := rel.ID
	a := album.Album{
		Title:       strings.TrimSpace(rel.Title),
		Artist:      rel.ArtistName(),
		ReleaseDate: search.ParseReleaseDate(rel.Date),
		CoverURL:    s.mb.CoverArtURL(ctx, mbid),
		MBID:        &mbid,
	}
	return s.albums.InsertIfAbsent(ctx, &a)
}
