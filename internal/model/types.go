package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryResult holds the output of one category rule.
type CategoryResult struct {
	// Symbols is the sorted, deduplicated ticker list.
	Symbols []string

	// Records are the rows that matched the rule, in original document order
	// and without deduplication.
	Records []Record
}

// RunSummary describes one completed pipeline run.
type RunSummary struct {
	RunID       uuid.UUID
	Started     time.Time
	Finished    time.Time
	RowsFetched int

	// Categories maps category key to the number of symbols produced.
	Categories map[string]int

	// Consolidated is the size of the cross-category list.
	Consolidated int
}
