// Package payment drives the single pending top-up payment of a tenant:
// creation, status polling, cancellation and expiry.
package payment

//go:generate mockgen -source=controller.go -destination=mock_controller.go -package=payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/pkg/subscription"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	refreshTimeout = 15 * time.Second
	maxAmount      = 1 << 53
)

var (
	ErrNoPendingPayment  = fmt.Errorf("%w: no pending payment", domain.ErrNotFound)
	ErrPaymentInProgress = fmt.Errorf("%w: a payment is already pending", domain.ErrConflict)
	ErrCancelInProgress  = fmt.Errorf("%w: cancellation already in progress", domain.ErrConflict)
	ErrSuperseded        = fmt.Errorf("%w: payment changed while the request was in flight", domain.ErrConflict)
)

type API interface {
	CreatePayment(ctx context.Context, amount int64) (*domain.Payment, error)
	GetPendingPayment(ctx context.Context) (*domain.Payment, error)
	CancelPendingPayment(ctx context.Context) (*domain.CancelResult, error)
	GetPaymentStatus(ctx context.Context, code string) (*domain.PaymentStatusResult, error)
}

type Refresher interface {
	RefreshAfter(ctx context.Context) error
}

type State string

const (
	StateIdle     State = "idle"
	StateCreating State = "creating"
	StatePending  State = "pending"
)

type Status struct {
	State       State
	Payment     *domain.Payment
	LastOutcome domain.PaymentStatus
	Remaining   time.Duration
	Cancelling  bool
}

type pollHandle struct {
	cancel context.CancelFunc
}

type Controller struct {
	api      API
	wallet   Refresher
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	state      State
	payment    *domain.Payment
	outcome    domain.PaymentStatus
	generation uint64
	cancelling bool
	poll       *pollHandle

	checks    singleflight.Group
	loops     atomic.Int32
	wg        sync.WaitGroup
	notifyMu  sync.Mutex
	listeners subscription.Listeners[Status]
}

func New(api API, wallet Refresher, interval time.Duration) *Controller {
	return &Controller{
		api:      api,
		wallet:   wallet,
		interval: interval,
		now:      time.Now,
		state:    StateIdle,
	}
}

// ParseAmount validates a top-up amount entered by the user.
func ParseAmount(input string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be a number", domain.ErrValidation)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: amount must be a whole number", domain.ErrValidation)
	}
	if d.LessThan(decimal.NewFromInt(domain.MinPaymentAmount)) {
		return 0, fmt.Errorf("%w: amount must be at least %d", domain.ErrValidation, domain.MinPaymentAmount)
	}
	if d.GreaterThan(decimal.NewFromInt(maxAmount)) {
		return 0, fmt.Errorf("%w: amount is too large", domain.ErrValidation)
	}
	return d.IntPart(), nil
}

// Create requests a new payment and starts polling its status.
func (c *Controller) Create(ctx context.Context, amount int64) (*domain.Payment, error) {
	if amount < domain.MinPaymentAmount {
		return nil, fmt.Errorf("%w: amount must be at least %d", domain.ErrValidation, domain.MinPaymentAmount)
	}

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	c.generation++
	gen := c.generation
	c.state = StateCreating
	c.mu.Unlock()
	c.notify()

	payment, err := c.api.CreatePayment(ctx, amount)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return nil, ErrSuperseded
	}
	if err != nil {
		c.state = StateIdle
		c.mu.Unlock()
		c.notify()
		zap.L().Warn("payment creation failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	c.adopt(payment)
	c.mu.Unlock()
	c.notify()

	zap.L().Info("payment created", zap.String("code", payment.Code), zap.Int64("amount", payment.Amount))
	return clonePayment(payment), nil
}

// Resume adopts the payment the platform still holds as pending, if any.
func (c *Controller) Resume(ctx context.Context) (*domain.Payment, error) {
	c.mu.Lock()
	if c.state == StatePending {
		payment := clonePayment(c.payment)
		c.mu.Unlock()
		return payment, nil
	}
	if c.state == StateCreating {
		c.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	gen := c.generation
	c.mu.Unlock()

	payment, err := c.api.GetPendingPayment(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	if !payment.Status.Open() {
		return nil, nil
	}

	c.mu.Lock()
	if gen != c.generation || c.state != StateIdle {
		c.mu.Unlock()
		return nil, ErrSuperseded
	}
	c.generation++
	c.adopt(payment)
	c.mu.Unlock()
	c.notify()

	zap.L().Info("pending payment resumed", zap.String("code", payment.Code))
	return clonePayment(payment), nil
}

// CheckStatus queries the status of the pending payment once. A completed
// payment triggers a wallet refresh before CheckStatus returns.
func (c *Controller) CheckStatus(ctx context.Context) (domain.PaymentStatus, error) {
	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()
	return c.check(ctx, gen)
}

// Cancel cancels the pending payment. Local state is cleared as soon as the
// platform confirms; a second call while the first is in flight fails with
// ErrCancelInProgress without reaching the platform.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StatePending {
		c.mu.Unlock()
		return ErrNoPendingPayment
	}
	if c.cancelling {
		c.mu.Unlock()
		return ErrCancelInProgress
	}
	c.cancelling = true
	gen := c.generation
	code := c.payment.Code
	c.mu.Unlock()
	c.notify()

	_, err := c.api.CancelPendingPayment(ctx)
	notFound := errors.Is(err, domain.ErrNotFound)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		if notFound {
			return nil
		}
		return err
	}
	if err != nil && !notFound {
		c.cancelling = false
		c.mu.Unlock()
		c.notify()
		zap.L().Warn("payment cancellation failed", zap.String("code", code), zap.Error(err))
		return err
	}
	outcome := domain.PaymentCancelled
	if notFound {
		outcome = domain.PaymentResolved
	}
	c.finish(outcome)
	c.mu.Unlock()
	c.notify()

	zap.L().Info("payment cancelled", zap.String("code", code), zap.String("outcome", string(outcome)))
	if notFound {
		c.refreshWallet()
	}
	return nil
}

// Reset stops polling and forgets the payment. Results of requests still in
// flight are discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.generation++
	c.state = StateIdle
	c.payment = nil
	c.outcome = ""
	c.cancelling = false
	c.stopPolling()
	c.mu.Unlock()
	c.notify()
}

// Close resets the controller and waits for the polling goroutine to exit.
func (c *Controller) Close() {
	c.Reset()
	c.wg.Wait()
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	status := Status{
		State:       c.state,
		Payment:     clonePayment(c.payment),
		LastOutcome: c.outcome,
		Cancelling:  c.cancelling,
	}
	if c.payment != nil {
		status.Remaining = c.payment.Remaining(c.now())
	}
	return status
}

// Subscribe registers fn for status changes. Each call delivers the status
// current at delivery time.
func (c *Controller) Subscribe(fn func(Status)) *subscription.Subscription {
	return c.listeners.Add(fn)
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.listeners.Notify(c.Status())
}

// adopt makes payment the pending one and restarts polling. c.mu must be held.
func (c *Controller) adopt(payment *domain.Payment) {
	c.state = StatePending
	c.payment = clonePayment(payment)
	c.outcome = ""
	c.cancelling = false
	c.startPolling(c.generation)
}

// finish moves to idle recording outcome. c.mu must be held.
func (c *Controller) finish(outcome domain.PaymentStatus) {
	c.generation++
	c.state = StateIdle
	c.payment = nil
	c.outcome = outcome
	c.cancelling = false
	c.stopPolling()
}

// startPolling replaces the running status poll. c.mu must be held.
func (c *Controller) startPolling(gen uint64) {
	c.stopPolling()

	ctx, cancel := context.WithCancel(context.Background())
	c.poll = &pollHandle{cancel: cancel}
	c.wg.Add(1)
	go c.pollLoop(ctx, gen)
}

// stopPolling cancels the running status poll without waiting for it, so it
// may be called from the poll goroutine itself. c.mu must be held.
func (c *Controller) stopPolling() {
	if c.poll == nil {
		return
	}
	c.poll.cancel()
	c.poll = nil
}

func (c *Controller) pollLoop(ctx context.Context, gen uint64) {
	defer c.wg.Done()
	c.loops.Add(1)
	defer c.loops.Add(-1)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, err := c.check(ctx, gen)
			switch {
			case err == nil:
				zap.L().Debug("payment status polled", zap.String("status", string(status)))
			case ctx.Err() != nil, errors.Is(err, ErrSuperseded), errors.Is(err, ErrNoPendingPayment):
				return
			default:
				zap.L().Warn("payment status check failed, will retry", zap.Error(err))
			}
		}
	}
}

func (c *Controller) check(ctx context.Context, gen uint64) (domain.PaymentStatus, error) {
	c.mu.Lock()
	if gen != c.generation || c.state != StatePending {
		c.mu.Unlock()
		if gen != c.generation {
			return "", ErrSuperseded
		}
		return "", ErrNoPendingPayment
	}
	code := c.payment.Code
	c.mu.Unlock()

	v, err, _ := c.checks.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		result, err := c.api.GetPaymentStatus(ctx, code)
		status, refresh, err := c.applyStatus(gen, code, result, err)
		if refresh {
			c.refreshWallet()
		}
		return status, err
	})
	if err != nil {
		return "", err
	}
	return v.(domain.PaymentStatus), nil
}

func (c *Controller) applyStatus(gen uint64, code string, result *domain.PaymentStatusResult, err error) (domain.PaymentStatus, bool, error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		zap.L().Debug("discarding status of a superseded payment", zap.String("code", code))
		return "", false, ErrSuperseded
	}

	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.mu.Unlock()
			return "", false, err
		}
		c.finish(domain.PaymentResolved)
		c.mu.Unlock()
		c.notify()
		zap.L().Info("payment resolved elsewhere", zap.String("code", code))
		return domain.PaymentResolved, true, nil
	}

	switch result.Status {
	case domain.PaymentCompleted, domain.PaymentCancelled, domain.PaymentExpired:
		c.finish(result.Status)
		c.mu.Unlock()
		c.notify()
		zap.L().Info("payment finished", zap.String("code", code), zap.String("status", string(result.Status)))
		return result.Status, result.Status == domain.PaymentCompleted, nil
	case domain.PaymentPending, domain.PaymentProcessing:
		changed := c.payment.Status != result.Status
		c.payment.Status = result.Status
		c.mu.Unlock()
		if changed {
			c.notify()
		}
		return result.Status, false, nil
	default:
		c.mu.Unlock()
		zap.L().Warn("unknown payment status, still waiting", zap.String("code", code), zap.String("status", string(result.Status)))
		return domain.PaymentPending, false, nil
	}
}

func (c *Controller) refreshWallet() {
	if c.wallet == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := c.wallet.RefreshAfter(ctx); err != nil {
		zap.L().Warn("wallet refresh after payment failed", zap.Error(err))
	}
}

func clonePayment(p *domain.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	out := *p
	if p.Info != nil {
		info := *p.Info
		out.Info = &info
	}
	return &out
}
