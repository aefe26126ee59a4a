// Package notify fans the daily reminder out to every known user.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/metrics"
)

// Summary reports a broadcast's outcome.
type Summary struct {
	Sent   int
	Failed int
}

// Service broadcasts the daily reminder.
type Service struct {
	users   UserSource
	sender  Sender
	message string
	logger  *zap.Logger
}

// New creates a Service. message is the rendered reminder text.
func New(users UserSource, sender Sender, message string, logger *zap.Logger) *Service {
	return &Service{users: users, sender: sender, message: message, logger: logger}
}

// Broadcast sends the reminder to every distinct registered user. Each send
// is its own failure boundary: a blocked bot or dead chat is logged and
// counted, never aborting the rest of the batch.
func (s *Service) Broadcast(ctx context.Context) Summary {
	var sum Summary
	for _, userID := range s.users.Users(ctx) {
		if err := s.sender.SendText(ctx, userID, s.message); err != nil {
			sum.Failed++
			metrics.RemindersTotal.WithLabelValues("failed").Inc()
			s.logger.Warn("reminder delivery failed",
				zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		sum.Sent++
		metrics.RemindersTotal.WithLabelValues("sent").Inc()
	}

	s.logger.Info("daily reminder broadcast finished",
		zap.Int("sent", sum.Sent), zap.Int("failed", sum.Failed))
	return sum
}
