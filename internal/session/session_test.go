package session

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/pkg/auth"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, tenantID string, expiresAt time.Time) string {
	t.Helper()
	claims := auth.Claims{TenantID: tenantID}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = expiresAt.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestSession_Init(t *testing.T) {
	tests := []struct {
		name       string
		creds      func() domain.Credentials
		expectErr  error
		expectedID string
	}{
		{
			name: "Explicit tenant",
			creds: func() domain.Credentials {
				return domain.Credentials{AccessToken: token(t, "", time.Time{}), TenantID: "t1", TenantSlug: "acme"}
			},
			expectedID: "t1",
		},
		{
			name: "Tenant from token claims",
			creds: func() domain.Credentials {
				return domain.Credentials{AccessToken: token(t, "t9", time.Time{})}
			},
			expectedID: "t9",
		},
		{
			name: "Missing token",
			creds: func() domain.Credentials {
				return domain.Credentials{TenantID: "t1"}
			},
			expectErr: domain.ErrAuth,
		},
		{
			name: "Malformed token",
			creds: func() domain.Credentials {
				return domain.Credentials{AccessToken: "garbage", TenantID: "t1"}
			},
			expectErr: domain.ErrAuth,
		},
		{
			name: "No tenant anywhere",
			creds: func() domain.Credentials {
				return domain.Credentials{AccessToken: token(t, "", time.Time{})}
			},
			expectErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(NewMemoryCache())
			err := s.Init(tt.creds())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.False(t, s.Active())
				return
			}
			require.NoError(t, err)
			assert.True(t, s.Active())
			assert.Equal(t, tt.expectedID, s.TenantID())
		})
	}
}

func TestSession_Token(t *testing.T) {
	now := time.Now()
	s := New(NewMemoryCache())

	_, err := s.Token()
	assert.ErrorIs(t, err, domain.ErrAuth)

	require.NoError(t, s.Init(domain.Credentials{AccessToken: token(t, "t1", now.Add(time.Hour))}))
	tok, err := s.Token()
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = s.Token()
	assert.ErrorIs(t, err, domain.ErrAuth)
}

func TestSession_WalletCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	s := New(cache)

	_, ok := s.LoadWallet(ctx, "t1")
	assert.False(t, ok)

	require.NoError(t, s.SaveWallet(ctx, "t1", domain.WalletSnapshot{VND: 5000, Credit: 12, Source: domain.SourcePoll}))
	snapshot, ok := s.LoadWallet(ctx, "t1")
	require.True(t, ok)
	assert.Equal(t, int64(5000), snapshot.VND)
	assert.Equal(t, int64(12), snapshot.Credit)
	assert.Equal(t, domain.SourceInitial, snapshot.Source)

	for name, payload := range map[string]string{
		"not json":        `{`,
		"missing credit":  `{"vndBalance":10}`,
		"string balance":  `{"vndBalance":"10","creditBalance":1}`,
		"fractional":      `{"vndBalance":10.5,"creditBalance":1}`,
		"negative credit": `{"vndBalance":10,"creditBalance":-1}`,
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, cache.Set(ctx, walletKey("bad"), []byte(payload)))
			_, ok := s.LoadWallet(ctx, "bad")
			assert.False(t, ok)
		})
	}
}

func TestSession_ClearAndSwitch(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	s := New(cache)
	require.NoError(t, s.Init(domain.Credentials{AccessToken: token(t, "", time.Time{}), TenantID: "t1"}))

	require.NoError(t, s.SaveWallet(ctx, "t1", domain.WalletSnapshot{VND: 1, Credit: 1}))
	require.NoError(t, s.SwitchTenant(ctx, "t2", "beta"))
	assert.Equal(t, "t2", s.TenantID())
	assert.Equal(t, "beta", s.TenantSlug())
	_, ok := s.LoadWallet(ctx, "t1")
	assert.False(t, ok, "previous tenant wallet must be forgotten")

	require.NoError(t, s.SaveWallet(ctx, "t2", domain.WalletSnapshot{VND: 2, Credit: 2}))
	require.NoError(t, s.Clear(ctx))
	assert.False(t, s.Active())
	assert.Empty(t, s.TenantID())
	_, ok = s.LoadWallet(ctx, "t2")
	assert.False(t, ok)

	assert.ErrorIs(t, s.SwitchTenant(ctx, "t3", ""), domain.ErrAuth)
	assert.ErrorIs(t, s.SwitchTenant(ctx, "", ""), domain.ErrValidation)
}
