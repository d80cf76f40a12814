package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/walletsync/internal/api"
	"github.com/GlebRadaev/walletsync/internal/config"
	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/service/channel"
	"github.com/GlebRadaev/walletsync/internal/service/payment"
	"github.com/GlebRadaev/walletsync/internal/service/poller"
	"github.com/GlebRadaev/walletsync/internal/service/walletstore"
	"github.com/GlebRadaev/walletsync/internal/session"
	"github.com/GlebRadaev/walletsync/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Services struct {
	Session  *session.Session
	API      *api.Client
	Wallet   *walletstore.Store
	Channel  *channel.Manager
	Payments *payment.Controller
	Poller   *poller.Service

	pushEnabled bool
	// mu serializes tenant changes.
	mu sync.Mutex
}

func New(cfg *config.Config, sess *session.Session, httpClient clients.HTTPClientI) *Services {
	client := api.New(cfg.APIAddress, httpClient, sess)
	wallet := walletstore.New(client, sess)

	return &Services{
		Session:     sess,
		API:         client,
		Wallet:      wallet,
		Channel:     channel.NewManager(channel.NewSocketIO(cfg.PushAddress), wallet),
		Payments:    payment.New(client, wallet, cfg.StatusInterval),
		Poller:      poller.New(wallet, cfg.PollInterval),
		pushEnabled: cfg.PushEnabled,
	}
}

// SignIn starts the session from the configured access token, or logs in with
// email and password when no token is configured.
func (s *Services) SignIn(ctx context.Context, cfg *config.Config) error {
	if cfg.AccessToken != "" {
		return s.Session.Init(domain.Credentials{
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
			TenantID:     cfg.TenantID,
			TenantSlug:   cfg.TenantSlug,
		})
	}
	if cfg.LoginEmail == "" {
		return fmt.Errorf("%w: access token or login credentials are required", domain.ErrAuth)
	}
	return s.Login(ctx, cfg.LoginEmail, cfg.LoginPassword, cfg.TenantID)
}

// Login signs in and selects tenantID, or the first membership when empty.
// The wallet returned with the login response seeds the cache.
func (s *Services) Login(ctx context.Context, email, password, tenantID string) error {
	result, err := s.API.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	creds := domain.Credentials{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TenantID:     tenantID,
	}
	switch membership, ok := pickTenant(result.Tenants, tenantID); {
	case ok:
		creds.TenantID = membership.ID
		creds.TenantSlug = membership.Slug
	case tenantID != "":
		return fmt.Errorf("%w: user is not a member of tenant %s", domain.ErrValidation, tenantID)
	}

	if err := s.Session.Init(creds); err != nil {
		return err
	}

	if result.Wallet != nil {
		snapshot := domain.WalletSnapshot{
			VND:       result.Wallet.VND,
			Credit:    result.Wallet.Credit,
			Source:    domain.SourceInitial,
			UpdatedAt: time.Now(),
		}
		if err := s.Session.SaveWallet(ctx, s.Session.TenantID(), snapshot); err != nil {
			zap.L().Warn("failed to cache login wallet", zap.Error(err))
		}
	}
	return nil
}

func pickTenant(tenants []domain.TenantMembership, tenantID string) (domain.TenantMembership, bool) {
	for _, t := range tenants {
		if tenantID == "" || t.ID == tenantID {
			return t, true
		}
	}
	return domain.TenantMembership{}, false
}

// Activate binds the wallet, the push channel and the payment controller to
// the session tenant and runs the bootstrap fetches.
func (s *Services) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activate(ctx)
}

func (s *Services) activate(ctx context.Context) error {
	tenantID := s.Session.TenantID()
	if tenantID == "" {
		return fmt.Errorf("%w: no active tenant", domain.ErrAuth)
	}

	s.Wallet.Initialize(ctx, tenantID)
	if s.pushEnabled {
		s.Channel.Connect(tenantID)
	}

	var g errgroup.Group
	g.Go(func() error {
		if err := s.Wallet.Refresh(ctx); err != nil {
			return fmt.Errorf("initial balance refresh: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if _, err := s.Payments.Resume(ctx); err != nil {
			return fmt.Errorf("resume pending payment: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// SwitchTenant moves every component to another tenant. Bootstrap failures
// are logged; the wallet reports them as stale.
func (s *Services) SwitchTenant(ctx context.Context, tenantID, tenantSlug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tenantID == "" {
		return fmt.Errorf("%w: tenant id is required", domain.ErrValidation)
	}

	s.Payments.Reset()
	s.Wallet.Reset()
	if err := s.Session.SwitchTenant(ctx, tenantID, tenantSlug); err != nil {
		return err
	}
	if err := s.activate(ctx); err != nil {
		zap.L().Warn("tenant bootstrap incomplete", zap.String("tenantID", tenantID), zap.Error(err))
	}
	return nil
}

func (s *Services) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Channel.Disconnect()
	s.Payments.Reset()
	s.Wallet.Reset()
	return s.Session.Clear(ctx)
}

// Close stops background work and waits for it to exit.
func (s *Services) Close() {
	s.Poller.Stop()
	s.Channel.Disconnect()
	s.Payments.Close()
}
