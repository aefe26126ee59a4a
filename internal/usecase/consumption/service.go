// Package consumption coordinates consumption lookups: credential checks,
// the gateway call, the low-balance annotation and the usage log.
package consumption

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/domain"
	"github.com/hetmobile/hetbot/internal/logger"
)

// Options tune the service beyond its required collaborators.
type Options struct {
	// Graphs resolves remote graph URLs; nil in placeholder mode.
	Graphs GraphSource
	// RequireKey gates lookups on a stored per-user API key (remote mode).
	RequireKey bool
	// LocalGraphDir holds pre-rendered fallback images
	// (daily_graph.png, monthly_graph.png).
	LocalGraphDir string
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Service handles consumption and graph lookups.
type Service struct {
	gateway Gateway
	usage   UsageWriter
	creds   CredentialReader
	opts    Options
}

// New creates a Service.
func New(gateway Gateway, usage UsageWriter, creds CredentialReader, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{gateway: gateway, usage: usage, creds: creds, opts: opts}
}

// Today fetches today's reading for the account and records it in the usage
// log. Nothing is persisted when the gateway fails. A usage-log write
// failure is logged but does not hide the reading from the user.
func (s *Service) Today(ctx context.Context, userID int64, account string) (domain.Reading, error) {
	key, err := s.key(userID)
	if err != nil {
		return domain.Reading{}, err
	}

	reading, err := s.gateway.GetConsumption(ctx, account, key)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("consumption lookup for %s: %w", account, err)
	}

	rec := domain.NewUsageRecord(userID, reading, s.opts.Now())
	if err := s.usage.UpsertDaily(ctx, rec); err != nil {
		logger.FromContext(ctx).Warn("usage log write failed",
			zap.Int64("user_id", userID), zap.String("account", account), zap.Error(err))
	}

	return reading, nil
}

// Graph resolves a consumption graph for the period: the provider URL when
// available, otherwise a pre-rendered local image.
func (s *Service) Graph(ctx context.Context, userID int64, period domain.GraphPeriod) (domain.Graph, error) {
	if s.opts.Graphs != nil {
		key, err := s.key(userID)
		if err != nil {
			return domain.Graph{}, err
		}
		if url, err := s.opts.Graphs.GraphURL(ctx, period, key); err == nil {
			return domain.Graph{Period: period, URL: url}, nil
		}
	}

	if s.opts.LocalGraphDir != "" {
		path := filepath.Join(s.opts.LocalGraphDir, string(period)+"_graph.png")
		if _, err := os.Stat(path); err == nil {
			return domain.Graph{Period: period, LocalPath: path}, nil
		}
	}

	return domain.Graph{}, domain.ErrGraphUnavailable
}

func (s *Service) key(userID int64) (string, error) {
	if !s.opts.RequireKey {
		return "", nil
	}
	key, ok := s.creds.Get(userID)
	if !ok {
		return "", domain.ErrMissingCredential
	}
	return key, nil
}
