// Package session holds the credentials and tenant scope of the signed-in
// user together with the persisted wallet cache. It is created once per
// process and passed to every component that needs it.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/pkg/auth"
	"go.uber.org/zap"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

type Session struct {
	cache Cache
	now   func() time.Time

	mu     sync.RWMutex
	creds  domain.Credentials
	claims *auth.Claims
}

func New(cache Cache) *Session {
	return &Session{
		cache: cache,
		now:   time.Now,
	}
}

func walletKey(tenantID string) string {
	return "wallet:" + tenantID
}

// Init starts the session after login. The tenant falls back to the
// tenantId claim of the access token when not given explicitly.
func (s *Session) Init(creds domain.Credentials) error {
	if creds.AccessToken == "" {
		return fmt.Errorf("%w: access token is required", domain.ErrAuth)
	}
	claims, err := auth.ParseClaims(creds.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	if creds.TenantID == "" {
		creds.TenantID = claims.TenantID
	}
	if creds.TenantSlug == "" {
		creds.TenantSlug = claims.TenantSlug
	}
	if creds.TenantID == "" {
		return fmt.Errorf("%w: tenant id is required", domain.ErrValidation)
	}

	s.mu.Lock()
	s.creds = creds
	s.claims = claims
	s.mu.Unlock()

	zap.L().Info("session started", zap.String("tenantID", creds.TenantID), zap.String("tenantSlug", creds.TenantSlug))
	return nil
}

// Clear ends the session and drops the cached wallet of the active tenant.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	tenantID := s.creds.TenantID
	s.creds = domain.Credentials{}
	s.claims = nil
	s.mu.Unlock()

	if tenantID == "" {
		return nil
	}
	zap.L().Info("session cleared", zap.String("tenantID", tenantID))
	return s.cache.Delete(ctx, walletKey(tenantID))
}

// SwitchTenant moves the session to another tenant and forgets the wallet
// cached for the previous one.
func (s *Session) SwitchTenant(ctx context.Context, tenantID, tenantSlug string) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenant id is required", domain.ErrValidation)
	}

	s.mu.Lock()
	if s.creds.AccessToken == "" {
		s.mu.Unlock()
		return fmt.Errorf("%w: no active session", domain.ErrAuth)
	}
	previous := s.creds.TenantID
	s.creds.TenantID = tenantID
	s.creds.TenantSlug = tenantSlug
	s.mu.Unlock()

	if previous == "" || previous == tenantID {
		return nil
	}
	zap.L().Info("tenant switched", zap.String("from", previous), zap.String("to", tenantID))
	return s.cache.Delete(ctx, walletKey(previous))
}

// Token returns the bearer token for platform requests.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.creds.AccessToken == "" {
		return "", fmt.Errorf("%w: no active session", domain.ErrAuth)
	}
	if s.claims != nil && s.claims.Expired(s.now()) {
		return "", fmt.Errorf("%w: access token expired", domain.ErrAuth)
	}
	return s.creds.AccessToken, nil
}

func (s *Session) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.TenantID
}

func (s *Session) TenantSlug() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.TenantSlug
}

func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.AccessToken != ""
}

// LoadWallet returns the cached wallet of a tenant. Missing or malformed
// entries are reported as absent.
func (s *Session) LoadWallet(ctx context.Context, tenantID string) (domain.WalletSnapshot, bool) {
	payload, err := s.cache.Get(ctx, walletKey(tenantID))
	if err != nil {
		zap.L().Warn("failed to read cached wallet", zap.String("tenantID", tenantID), zap.Error(err))
		return domain.WalletSnapshot{}, false
	}
	if payload == nil {
		return domain.WalletSnapshot{}, false
	}

	var cached dto.CachedWalletDTO
	if err := json.Unmarshal(payload, &cached); err != nil {
		zap.L().Warn("ignoring malformed cached wallet", zap.String("tenantID", tenantID), zap.Error(err))
		return domain.WalletSnapshot{}, false
	}
	snapshot, err := cached.ToDomain()
	if err != nil {
		zap.L().Warn("ignoring incomplete cached wallet", zap.String("tenantID", tenantID), zap.Error(err))
		return domain.WalletSnapshot{}, false
	}
	return snapshot, true
}

func (s *Session) SaveWallet(ctx context.Context, tenantID string, snapshot domain.WalletSnapshot) error {
	payload, err := json.Marshal(dto.CachedWalletFromDomain(snapshot))
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, walletKey(tenantID), payload)
}
