package consumption

import (
	"context"

	"github.com/hetmobile/hetbot/internal/domain"
)

// Gateway fetches consumption data for an account. The api key is ignored
// by the placeholder implementation.
type Gateway interface {
	GetConsumption(ctx context.Context, account, apiKey string) (domain.Reading, error)
}

// GraphSource resolves remote graph image locations. Optional: the
// placeholder mode has none and falls back to local files.
type GraphSource interface {
	GraphURL(ctx context.Context, period domain.GraphPeriod, apiKey string) (string, error)
}

// UsageWriter persists daily usage rows.
type UsageWriter interface {
	UpsertDaily(ctx context.Context, rec domain.UsageRecord) error
}

// CredentialReader looks up a user's stored provider API key.
type CredentialReader interface {
	Get(userID int64) (string, bool)
}
