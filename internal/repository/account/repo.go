// Package account stores the registry of per-user utility accounts on top
// of the JSON file store.
package account

import (
	"context"

	"github.com/hetmobile/hetbot/internal/domain"
)

// collection is the consumer interface over the file store (ISP).
type collection interface {
	Load() []domain.Account
	Update(fn func(records []domain.Account) ([]domain.Account, error)) error
}

// Repo implements usecase/accounts.Repository with load-modify-save against
// a single collection. There is no in-memory cache: every call rescans the
// file, which is fine at the tens-to-thousands scale this bot serves.
type Repo struct {
	col collection
}

// New creates an account repository.
func New(col collection) *Repo {
	return &Repo{col: col}
}

// List returns the user's account numbers in insertion order.
func (r *Repo) List(_ context.Context, userID int64) []string {
	var numbers []string
	for _, acc := range r.col.Load() {
		if acc.UserID == userID {
			numbers = append(numbers, acc.AccountNumber)
		}
	}
	return numbers
}

// Add registers the (user, account) pair. Returns domain.ErrAccountExists
// if the pair is already present; the collection is left unchanged.
func (r *Repo) Add(_ context.Context, userID int64, number string) error {
	return r.col.Update(func(records []domain.Account) ([]domain.Account, error) {
		for _, acc := range records {
			if acc.UserID == userID && acc.AccountNumber == number {
				return nil, domain.ErrAccountExists
			}
		}
		return append(records, domain.Account{UserID: userID, AccountNumber: number}), nil
	})
}

// Remove deletes the (user, account) pair. Returns domain.ErrAccountNotFound
// if no such pair exists.
func (r *Repo) Remove(_ context.Context, userID int64, number string) error {
	return r.col.Update(func(records []domain.Account) ([]domain.Account, error) {
		kept := records[:0]
		for _, acc := range records {
			if acc.UserID == userID && acc.AccountNumber == number {
				continue
			}
			kept = append(kept, acc)
		}
		if len(kept) == len(records) {
			return nil, domain.ErrAccountNotFound
		}
		return kept, nil
	})
}

// UserIDs returns the distinct user ids present in the registry, in first-
// appearance order.
func (r *Repo) UserIDs(_ context.Context) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, acc := range r.col.Load() {
		if _, ok := seen[acc.UserID]; ok {
			continue
		}
		seen[acc.UserID] = struct{}{}
		ids = append(ids, acc.UserID)
	}
	return ids
}
