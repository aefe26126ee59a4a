package consumption

import (
	"context"

	"github.com/hetmobile/hetbot/internal/domain"
)

// mockGateway implements Gateway for tests.
type mockGateway struct {
	getFn func(ctx context.Context, account, apiKey string) (domain.Reading, error)
}

func (m *mockGateway) GetConsumption(ctx context.Context, account, apiKey string) (domain.Reading, error) {
	if m.getFn != nil {
		return m.getFn(ctx, account, apiKey)
	}
	return domain.Reading{AccountNumber: account}, nil
}

// mockUsageWriter implements UsageWriter for tests.
type mockUsageWriter struct {
	upsertFn func(ctx context.Context, rec domain.UsageRecord) error
	records  []domain.UsageRecord
}

func (m *mockUsageWriter) UpsertDaily(ctx context.Context, rec domain.UsageRecord) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, rec)
	}
	m.records = append(m.records, rec)
	return nil
}

// mockCredentials implements CredentialReader for tests.
type mockCredentials struct {
	keys map[int64]string
}

func (m *mockCredentials) Get(userID int64) (string, bool) {
	key, ok := m.keys[userID]
	return key, ok
}

// mockGraphSource implements GraphSource for tests.
type mockGraphSource struct {
	urlFn func(ctx context.Context, period domain.GraphPeriod, apiKey string) (string, error)
}

func (m *mockGraphSource) GraphURL(ctx context.Context, period domain.GraphPeriod, apiKey string) (string, error) {
	if m.urlFn != nil {
		return m.urlFn(ctx, period, apiKey)
	}
	return "", domain.ErrGraphUnavailable
}
