package accounts

import "context"

// Repository defines the storage contract for the account registry.
type Repository interface {
	List(ctx context.Context, userID int64) []string
	Add(ctx context.Context, userID int64, number string) error
	Remove(ctx context.Context, userID int64, number string) error
	UserIDs(ctx context.Context) []int64
}
