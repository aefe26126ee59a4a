// Package accounts implements registry operations over user-supplied
// utility account numbers.
package accounts

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
)

// Service handles account registry operations.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a Service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the user's account numbers in registration order.
func (s *Service) List(ctx context.Context, userID int64) []string {
	return s.repo.List(ctx, userID)
}

// Add registers a trimmed account number for the user.
func (s *Service) Add(ctx context.Context, userID int64, number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return domain.ErrInvalidAccountNumber
	}

	if err := s.repo.Add(ctx, userID, number); err != nil {
		return err
	}
	s.logger.Info("account registered",
		zap.Int64("user_id", userID), zap.String("account", number))
	return nil
}

// Remove deletes the user's account registration.
func (s *Service) Remove(ctx context.Context, userID int64, number string) error {
	if err := s.repo.Remove(ctx, userID, number); err != nil {
		return err
	}
	s.logger.Info("account removed",
		zap.Int64("user_id", userID), zap.String("account", number))
	return nil
}

// Users returns the distinct user ids with at least one registered account.
func (s *Service) Users(ctx context.Context) []int64 {
	return s.repo.UserIDs(ctx)
}
