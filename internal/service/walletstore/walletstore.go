// Package walletstore holds the wallet figures of the active tenant and
// reconciles the cached snapshot, REST polling and push events into one value.
package walletstore

//go:generate mockgen -source=walletstore.go -destination=mock_walletstore.go -package=walletstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/pkg/subscription"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrTenantMismatch = errors.New("event belongs to another tenant")

const fetchTimeout = 15 * time.Second

type Fetcher interface {
	GetBalances(ctx context.Context) (domain.Balances, error)
}

type Cache interface {
	LoadWallet(ctx context.Context, tenantID string) (domain.WalletSnapshot, bool)
	SaveWallet(ctx context.Context, tenantID string, snapshot domain.WalletSnapshot) error
}

// State is what subscribers render. Err is the last refresh failure and is
// cleared by the next successful update; the snapshot is never zeroed by it.
type State struct {
	TenantID string
	Snapshot domain.WalletSnapshot
	Loaded   bool
	Stale    bool
	Err      error
}

type Store struct {
	fetcher Fetcher
	cache   Cache
	now     func() time.Time

	// write serializes updates together with their delivery, so listeners
	// observe states in the order they were applied.
	write sync.Mutex
	mu    sync.RWMutex
	state State
	epoch uint64
	// flight numbers shared fetches. RefreshAfter starts a new one; fetched
	// is the newest flight applied, older flights finishing later are dropped.
	flight  uint64
	fetched uint64

	group     singleflight.Group
	listeners subscription.Listeners[State]
}

func New(fetcher Fetcher, cache Cache) *Store {
	return &Store{
		fetcher: fetcher,
		cache:   cache,
		now:     time.Now,
		flight:  1,
	}
}

// Initialize resets the store for a tenant and seeds it from the cached
// snapshot when one is present and valid.
func (s *Store) Initialize(ctx context.Context, tenantID string) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.Lock()
	s.epoch++
	s.state = State{TenantID: tenantID}
	s.mu.Unlock()

	if tenantID != "" {
		if cached, ok := s.cache.LoadWallet(ctx, tenantID); ok {
			cached.Source = domain.SourceInitial
			s.mu.Lock()
			s.state.Snapshot = cached
			s.state.Loaded = true
			s.mu.Unlock()
			zap.L().Debug("wallet seeded from cache", zap.String("tenantID", tenantID))
		}
	}

	s.listeners.Notify(s.State())
}

// Reset forgets the tenant and its figures. Refreshes still in flight are
// discarded when they complete.
func (s *Store) Reset() {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.Lock()
	s.epoch++
	s.state = State{}
	s.mu.Unlock()

	s.listeners.Notify(State{})
}

// ApplyPollResult overwrites the snapshot with balances fetched over REST.
func (s *Store) ApplyPollResult(ctx context.Context, balances domain.Balances) {
	s.apply(ctx, s.currentEpoch(), 0, balances, domain.SourcePoll)
}

// ApplyPushEvent overwrites the snapshot with pushed balances. Events carrying
// another tenant's id are dropped.
func (s *Store) ApplyPushEvent(ctx context.Context, event domain.BalanceUpdateEvent) error {
	s.mu.RLock()
	tenantID := s.state.TenantID
	epoch := s.epoch
	s.mu.RUnlock()

	if tenantID != "" && event.TenantID != "" && event.TenantID != tenantID {
		zap.L().Warn("dropping balance update for another tenant",
			zap.String("activeTenant", tenantID),
			zap.String("eventTenant", event.TenantID),
		)
		return fmt.Errorf("%w: %s", ErrTenantMismatch, event.TenantID)
	}

	s.apply(ctx, epoch, 0, event.Balances, domain.SourcePush)
	return nil
}

// Refresh fetches the balances once and applies them as a poll result.
// Concurrent calls share one request, and the request outlives a caller that
// gives up waiting. On failure the last snapshot is kept and the state is
// marked stale.
func (s *Store) Refresh(ctx context.Context) error {
	return s.refresh(ctx, false)
}

// RefreshAfter is Refresh for callers that need figures newer than an event
// they just observed. It never joins a request started before the call.
func (s *Store) RefreshAfter(ctx context.Context) error {
	return s.refresh(ctx, true)
}

func (s *Store) refresh(ctx context.Context, fresh bool) error {
	s.mu.Lock()
	if fresh {
		s.flight++
	}
	epoch, flight := s.epoch, s.flight
	s.mu.Unlock()

	fetchCtx := context.WithoutCancel(ctx)
	key := strconv.FormatUint(epoch, 10) + ":" + strconv.FormatUint(flight, 10)
	ch := s.group.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(fetchCtx, fetchTimeout)
		defer cancel()

		balances, err := s.fetcher.GetBalances(ctx)
		if err != nil {
			s.markStale(epoch, flight, err)
			return nil, err
		}
		s.apply(ctx, epoch, flight, balances, domain.SourcePoll)
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			zap.L().Debug("balance refresh coalesced")
		}
		return res.Err
	}
}

func (s *Store) Snapshot() domain.WalletSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Snapshot
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TenantID
}

// Subscribe registers fn for every state change. Listeners run synchronously
// in update order and must not apply updates to the store themselves.
func (s *Store) Subscribe(fn func(State)) *subscription.Subscription {
	return s.listeners.Add(fn)
}

func (s *Store) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// apply stores balances unless the tenant changed since epoch. A non-zero
// flight marks balances fetched by the store itself.
func (s *Store) apply(ctx context.Context, epoch, flight uint64, balances domain.Balances, source domain.Source) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		zap.L().Debug("discarding balances of a previous tenant", zap.String("source", string(source)))
		return
	}
	if flight != 0 {
		if flight < s.fetched {
			s.mu.Unlock()
			zap.L().Debug("discarding balances of an older refresh")
			return
		}
		s.fetched = flight
	}
	s.state.Snapshot = domain.WalletSnapshot{
		VND:       balances.VND,
		Credit:    balances.Credit,
		Source:    source,
		UpdatedAt: s.now(),
	}
	s.state.Loaded = true
	s.state.Stale = false
	s.state.Err = nil
	state := s.state
	s.mu.Unlock()

	if state.TenantID != "" {
		if err := s.cache.SaveWallet(ctx, state.TenantID, state.Snapshot); err != nil {
			zap.L().Warn("failed to persist wallet", zap.String("tenantID", state.TenantID), zap.Error(err))
		}
	}

	s.listeners.Notify(state)
}

func (s *Store) markStale(epoch, flight uint64, err error) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.Lock()
	if epoch != s.epoch || flight < s.fetched {
		s.mu.Unlock()
		return
	}
	s.state.Stale = true
	s.state.Err = err
	state := s.state
	s.mu.Unlock()

	zap.L().Warn("balance refresh failed, keeping last snapshot", zap.String("tenantID", state.TenantID), zap.Error(err))
	s.listeners.Notify(state)
}
