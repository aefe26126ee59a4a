package account

import "github.com/hetmobile/hetbot/internal/domain"

// mockCollection implements the consumer interface in memory for tests.
type mockCollection struct {
	records []domain.Account
}

func (m *mockCollection) Load() []domain.Account {
	return append([]domain.Account(nil), m.records...)
}

func (m *mockCollection) Update(fn func(records []domain.Account) ([]domain.Account, error)) error {
	updated, err := fn(m.Load())
	if err != nil {
		return err
	}
	m.records = updated
	return nil
}
