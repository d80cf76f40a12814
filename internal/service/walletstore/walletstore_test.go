package walletstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Store, *MockFetcher, *MockCache) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	cache := NewMockCache(ctrl)
	return New(fetcher, cache), fetcher, cache
}

func TestStore_Initialize(t *testing.T) {
	tests := []struct {
		name       string
		cached     domain.WalletSnapshot
		found      bool
		wantLoaded bool
	}{
		{
			name:       "Seeded from cache",
			cached:     domain.WalletSnapshot{VND: 5000, Credit: 20, Source: domain.SourcePoll},
			found:      true,
			wantLoaded: true,
		},
		{
			name: "Nothing cached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, cache := NewMock(t)
			cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(tt.cached, tt.found)

			var got []State
			sub := store.Subscribe(func(s State) { got = append(got, s) })
			defer sub.Close()

			store.Initialize(context.Background(), "t1")

			state := store.State()
			assert.Equal(t, "t1", state.TenantID)
			assert.Equal(t, tt.wantLoaded, state.Loaded)
			if tt.wantLoaded {
				assert.Equal(t, int64(5000), state.Snapshot.VND)
				assert.Equal(t, domain.SourceInitial, state.Snapshot.Source)
			} else {
				assert.Zero(t, store.Snapshot())
			}
			require.Len(t, got, 1)
			assert.Equal(t, state, got[0])
		})
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	store, _, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil).Times(6)
	store.Initialize(context.Background(), "t1")

	steps := []struct {
		push     bool
		balances domain.Balances
	}{
		{push: false, balances: domain.Balances{VND: 100, Credit: 1}},
		{push: true, balances: domain.Balances{VND: 300, Credit: 3}},
		{push: true, balances: domain.Balances{VND: 200, Credit: 2}},
		{push: false, balances: domain.Balances{VND: 50, Credit: 0}},
		{push: false, balances: domain.Balances{VND: 0, Credit: 9}},
		{push: true, balances: domain.Balances{VND: 1000000, Credit: 7}},
	}

	for _, step := range steps {
		if step.push {
			err := store.ApplyPushEvent(context.Background(), domain.BalanceUpdateEvent{TenantID: "t1", Balances: step.balances})
			require.NoError(t, err)
			assert.Equal(t, domain.SourcePush, store.Snapshot().Source)
		} else {
			store.ApplyPollResult(context.Background(), step.balances)
			assert.Equal(t, domain.SourcePoll, store.Snapshot().Source)
		}
		assert.Equal(t, step.balances, store.Snapshot().Balances())
	}
}

func TestStore_ApplyPushEventOtherTenant(t *testing.T) {
	store, _, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{VND: 10, Credit: 1}, true)
	store.Initialize(context.Background(), "t1")

	err := store.ApplyPushEvent(context.Background(), domain.BalanceUpdateEvent{
		TenantID: "t2",
		Balances: domain.Balances{VND: 999, Credit: 999},
	})

	assert.ErrorIs(t, err, ErrTenantMismatch)
	assert.Equal(t, int64(10), store.Snapshot().VND)
}

func TestStore_ApplyPersistFailure(t *testing.T) {
	store, _, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(errors.New("db down"))
	store.Initialize(context.Background(), "t1")

	store.ApplyPollResult(context.Background(), domain.Balances{VND: 1, Credit: 2})

	assert.Equal(t, domain.Balances{VND: 1, Credit: 2}, store.Snapshot().Balances())
	assert.False(t, store.State().Stale)
}

func TestStore_Refresh(t *testing.T) {
	tests := []struct {
		name      string
		balances  domain.Balances
		fetchErr  error
		wantSaved bool
		expected  domain.Balances
	}{
		{
			name:      "Success",
			balances:  domain.Balances{VND: 250000, Credit: 1200},
			wantSaved: true,
			expected:  domain.Balances{VND: 250000, Credit: 1200},
		},
		{
			name:     "Failure keeps last snapshot",
			fetchErr: domain.ErrNetwork,
			expected: domain.Balances{VND: 5000, Credit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fetcher, cache := NewMock(t)
			cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{VND: 5000, Credit: 20}, true)
			store.Initialize(context.Background(), "t1")

			fetcher.EXPECT().GetBalances(gomock.Any()).Return(tt.balances, tt.fetchErr)
			if tt.wantSaved {
				cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil)
			}

			var last State
			sub := store.Subscribe(func(s State) { last = s })
			defer sub.Close()

			err := store.Refresh(context.Background())

			state := store.State()
			assert.Equal(t, tt.expected, state.Snapshot.Balances())
			assert.True(t, state.Loaded)
			assert.Equal(t, state, last)
			if tt.fetchErr != nil {
				assert.ErrorIs(t, err, tt.fetchErr)
				assert.True(t, state.Stale)
				assert.ErrorIs(t, state.Err, tt.fetchErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, state.Stale)
			assert.NoError(t, state.Err)
			assert.Equal(t, domain.SourcePoll, state.Snapshot.Source)
		})
	}
}

func TestStore_RefreshRecoversFromStale(t *testing.T) {
	store, fetcher, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil)
	store.Initialize(context.Background(), "t1")

	gomock.InOrder(
		fetcher.EXPECT().GetBalances(gomock.Any()).Return(domain.Balances{}, domain.ErrNetwork),
		fetcher.EXPECT().GetBalances(gomock.Any()).Return(domain.Balances{VND: 7, Credit: 8}, nil),
	)

	require.Error(t, store.Refresh(context.Background()))
	assert.True(t, store.State().Stale)
	assert.False(t, store.State().Loaded)

	require.NoError(t, store.Refresh(context.Background()))
	assert.False(t, store.State().Stale)
	assert.Equal(t, domain.Balances{VND: 7, Credit: 8}, store.Snapshot().Balances())
}

func TestStore_RefreshCoalesced(t *testing.T) {
	store, fetcher, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil)
	store.Initialize(context.Background(), "t1")

	entered := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().GetBalances(gomock.Any()).DoAndReturn(func(context.Context) (domain.Balances, error) {
		close(entered)
		<-release
		return domain.Balances{VND: 1, Credit: 1}, nil
	}).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Refresh(context.Background()))
		}()
	}

	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, domain.Balances{VND: 1, Credit: 1}, store.Snapshot().Balances())
}

func TestStore_RefreshAfterStartsNewFetch(t *testing.T) {
	store, fetcher, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil).Times(1)
	store.Initialize(context.Background(), "t1")

	entered := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		fetcher.EXPECT().GetBalances(gomock.Any()).DoAndReturn(func(context.Context) (domain.Balances, error) {
			close(entered)
			<-release
			return domain.Balances{VND: 100}, nil
		}),
		fetcher.EXPECT().GetBalances(gomock.Any()).Return(domain.Balances{VND: 200100}, nil),
	)

	polled := make(chan error)
	go func() { polled <- store.Refresh(context.Background()) }()
	<-entered

	require.NoError(t, store.RefreshAfter(context.Background()))
	assert.Equal(t, int64(200100), store.Snapshot().VND)

	close(release)
	require.NoError(t, <-polled)
	assert.Equal(t, int64(200100), store.Snapshot().VND)
}

func TestStore_RefreshOutlivesCancelledCaller(t *testing.T) {
	store, fetcher, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil)
	store.Initialize(context.Background(), "t1")

	entered := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().GetBalances(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.Balances, error) {
		close(entered)
		<-release
		if ctx.Err() != nil {
			return domain.Balances{}, ctx.Err()
		}
		return domain.Balances{VND: 4, Credit: 2}, nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error)
	go func() { first <- store.Refresh(ctx) }()
	<-entered

	second := make(chan error)
	go func() { second <- store.Refresh(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(release)
	require.NoError(t, <-second)
	assert.Equal(t, domain.Balances{VND: 4, Credit: 2}, store.Snapshot().Balances())
	assert.False(t, store.State().Stale)
}

func TestStore_ResetDiscardsInFlightRefresh(t *testing.T) {
	store, fetcher, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{VND: 3, Credit: 3}, true)
	store.Initialize(context.Background(), "t1")

	entered := make(chan struct{})
	release := make(chan struct{})
	fetcher.EXPECT().GetBalances(gomock.Any()).DoAndReturn(func(context.Context) (domain.Balances, error) {
		close(entered)
		<-release
		return domain.Balances{VND: 9, Credit: 9}, nil
	})

	done := make(chan error)
	go func() { done <- store.Refresh(context.Background()) }()

	<-entered
	store.Reset()
	close(release)
	require.NoError(t, <-done)

	state := store.State()
	assert.Empty(t, state.TenantID)
	assert.False(t, state.Loaded)
	assert.Zero(t, state.Snapshot)
}

func TestStore_SubscriptionClose(t *testing.T) {
	store, _, cache := NewMock(t)
	cache.EXPECT().LoadWallet(gomock.Any(), "t1").Return(domain.WalletSnapshot{}, false)
	cache.EXPECT().SaveWallet(gomock.Any(), "t1", gomock.Any()).Return(nil).Times(2)
	store.Initialize(context.Background(), "t1")

	var nav, widget int
	navSub := store.Subscribe(func(State) { nav++ })
	widgetSub := store.Subscribe(func(State) { widget++ })
	defer widgetSub.Close()

	store.ApplyPollResult(context.Background(), domain.Balances{VND: 1})
	navSub.Close()
	store.ApplyPollResult(context.Background(), domain.Balances{VND: 2})

	assert.Equal(t, 1, nav)
	assert.Equal(t, 2, widget)
}
