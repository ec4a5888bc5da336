package importer

import (
	"time"
)

type Run struct {
	ID                string
	StartedAt         time.Time
	FinishedAt        *time.Time
	Status            string // RUNNING, COMPLETED, FAILED
	ConfigTargetCount int
	ConfigMinScore    int
	QueriesTotal      int
	QueriesRun        int
	Imported          int
	Rejected          int
	Error             string
}
