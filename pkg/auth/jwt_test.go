package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("platform-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
		expired     bool
		tenantID    string
	}{
		{
			name: "Valid token",
			setup: func() string {
				return signed(t, Claims{
					TenantID:       "t1",
					StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix()},
				})
			},
			tenantID: "t1",
		},
		{
			name: "Expired token",
			setup: func() string {
				return signed(t, Claims{
					TenantID:       "t1",
					StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(-time.Hour).Unix()},
				})
			},
			expired:  true,
			tenantID: "t1",
		},
		{
			name: "Token without expiry",
			setup: func() string {
				return signed(t, Claims{Role: "tenant-admin"})
			},
		},
		{
			name: "Malformed token",
			setup: func() string {
				return "not-a-token"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseClaims(tt.setup())
			if tt.expectError {
				assert.ErrorIs(t, err, ErrMalformedToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expired, claims.Expired(now))
			assert.Equal(t, tt.tenantID, claims.TenantID)
		})
	}
}

func TestBearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer abc", BearerHeader("abc"))
}
