package poller

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockWallet) {
	ctrl := gomock.NewController(t)
	wallet := NewMockWallet(ctrl)
	service := New(wallet, time.Second)
	service.retryInterval = time.Millisecond
	return service, wallet
}

func TestService_poll(t *testing.T) {
	tests := []struct {
		name      string
		tenantID  string
		results   []error
		wantErr   error
		wantCalls int
	}{
		{
			name:      "Success on first attempt",
			tenantID:  "t1",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "Network error then success",
			tenantID:  "t1",
			results:   []error{domain.ErrNetwork, nil},
			wantCalls: 2,
		},
		{
			name:      "Rate limited then success",
			tenantID:  "t1",
			results:   []error{&domain.RateLimitError{RetryAfter: 5 * time.Millisecond}, nil},
			wantCalls: 2,
		},
		{
			name:      "Exhausted retries",
			tenantID:  "t1",
			results:   []error{domain.ErrNetwork, domain.ErrNetwork, domain.ErrNetwork},
			wantErr:   domain.ErrNetwork,
			wantCalls: 3,
		},
		{
			name:      "Auth error is not retried",
			tenantID:  "t1",
			results:   []error{fmt.Errorf("%w: token expired", domain.ErrAuth)},
			wantErr:   domain.ErrAuth,
			wantCalls: 1,
		},
		{
			name:      "Validation error is not retried",
			tenantID:  "t1",
			results:   []error{domain.ErrValidation},
			wantErr:   domain.ErrValidation,
			wantCalls: 1,
		},
		{
			name:      "No active tenant",
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, wallet := NewMock(t)
			wallet.EXPECT().TenantID().Return(tt.tenantID)

			calls := 0
			wallet.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) error {
				err := tt.results[calls]
				calls++
				return err
			}).Times(tt.wantCalls)

			err := service.poll(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestService_pollCanceledDuringBackoff(t *testing.T) {
	service, wallet := NewMock(t)
	service.retryInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	wallet.EXPECT().TenantID().Return("t1")
	wallet.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return domain.ErrNetwork
	})

	err := service.poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Start(t *testing.T) {
	service, wallet := NewMock(t)

	var calls atomic.Int32
	wallet.EXPECT().TenantID().Return("t1").AnyTimes()
	wallet.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) error {
		calls.Add(1)
		return nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))
	require.NoError(t, service.Start(ctx))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	service.Stop()
	after := calls.Load()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}
