package accounts

import "context"

// mockRepository implements Repository for tests.
type mockRepository struct {
	listFn    func(ctx context.Context, userID int64) []string
	addFn     func(ctx context.Context, userID int64, number string) error
	removeFn  func(ctx context.Context, userID int64, number string) error
	userIDsFn func(ctx context.Context) []int64
}

func (m *mockRepository) List(ctx context.Context, userID int64) []string {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil
}

func (m *mockRepository) Add(ctx context.Context, userID int64, number string) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, number)
	}
	return nil
}

func (m *mockRepository) Remove(ctx context.Context, userID int64, number string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, number)
	}
	return nil
}

func (m *mockRepository) UserIDs(ctx context.Context) []int64 {
	if m.userIDsFn != nil {
		return m.userIDsFn(ctx)
	}
	return nil
}
