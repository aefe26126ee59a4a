// Package usage stores the daily consumption log on top of the JSON file
// store, one row per (user, account, day).
package usage

import (
	"context"

	"github.com/hetmobile/hetbot/internal/domain"
)

// collection is the consumer interface over the file store (ISP).
type collection interface {
	Update(fn func(records []domain.UsageRecord) ([]domain.UsageRecord, error)) error
}

// Repo implements usecase/consumption.UsageWriter.
type Repo struct {
	col collection
}

// New creates a usage log repository.
func New(col collection) *Repo {
	return &Repo{col: col}
}

// UpsertDaily records the reading for its account-day. Re-querying the same
// day replaces the earlier row instead of appending a duplicate, so the log
// keeps at most one row per (user, account, date).
func (r *Repo) UpsertDaily(_ context.Context, rec domain.UsageRecord) error {
	return r.col.Update(func(records []domain.UsageRecord) ([]domain.UsageRecord, error) {
		for i, existing := range records {
			if existing.SameDay(rec) {
				records[i] = rec
				return records, nil
			}
		}
		return append(records, rec), nil
	})
}
