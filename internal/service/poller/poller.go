// Package poller refreshes the wallet on a fixed schedule as a fallback for
// the push channel.
package poller

//go:generate mockgen -source=poller.go -destination=mock_poller.go -package=poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/pkg/utils"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Wallet interface {
	Refresh(ctx context.Context) error
	TenantID() string
}

type Service struct {
	wallet        Wallet
	cron          *cron.Cron
	interval      time.Duration
	retryInterval time.Duration

	mu      sync.Mutex
	started bool
}

func New(wallet Wallet, interval time.Duration) *Service {
	logger := cronLogger{}
	return &Service{
		wallet: wallet,
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		interval:      interval,
		retryInterval: retryInterval,
	}
}

// Start schedules the refresh job. The job stops when ctx is done.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	_, err := s.cron.AddFunc("@every "+s.interval.String(), func() {
		if err := s.poll(ctx); err != nil && ctx.Err() == nil {
			zap.L().Error("Scheduled balance refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule balance refresh: %w", err)
	}

	s.cron.Start()
	s.started = true
	zap.L().Info("Balance poller started", zap.Duration("interval", s.interval))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop stops the schedule and waits for a running refresh to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	wasStarted := s.started
	s.started = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	if wasStarted {
		zap.L().Info("Balance poller stopped")
	}
}

func (s *Service) poll(ctx context.Context) error {
	if s.wallet.TenantID() == "" {
		zap.L().Debug("No active tenant, skipping balance refresh")
		return nil
	}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = s.wallet.Refresh(ctx); err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNetwork) {
			return err
		}
		if attempt == maxRetries {
			break
		}

		retryAfter := s.retryInterval * time.Duration(attempt)
		var rateErr *domain.RateLimitError
		if errors.As(err, &rateErr) {
			retryAfter = rateErr.RetryAfter
			zap.L().Warn("Rate limit detected, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
		} else {
			zap.L().Warn("Balance refresh failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
		}

		if sleepErr := utils.Sleep(ctx, retryAfter); sleepErr != nil {
			return sleepErr
		}
	}
	return fmt.Errorf("failed to refresh balances after %d retries: %w", maxRetries, err)
}

// cronLogger routes scheduler messages to the global zap logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Debugw(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zap.L().Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
