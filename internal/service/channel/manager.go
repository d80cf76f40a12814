// Package channel keeps a reconnecting push connection for one tenant and
// forwards balance updates to the wallet store.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/pkg/subscription"
	"github.com/GlebRadaev/walletsync/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	BalanceUpdateEvent = "wallet:balance:update"

	minBackoff = time.Second
	maxBackoff = 5 * time.Second
	queueSize  = 64
)

// Message is one named event received on a connection.
type Message struct {
	Event   string
	Payload json.RawMessage
}

// Conn is a live push connection. Receive blocks until a message arrives or
// the connection fails. Close must be safe to call more than once and must
// unblock a pending Receive.
type Conn interface {
	Receive() (Message, error)
	Close() error
}

type Transport interface {
	Dial(ctx context.Context, tenantID string) (Conn, error)
}

type Store interface {
	ApplyPushEvent(ctx context.Context, event domain.BalanceUpdateEvent) error
}

type link struct {
	tenantID string
	cancel   context.CancelFunc
	done     chan struct{}
}

type Manager struct {
	transport  Transport
	store      Store
	minBackoff time.Duration
	maxBackoff time.Duration
	// newPool builds the dispatch queue of one connection.
	newPool func() WorkerPoolI

	// op serializes Connect and Disconnect.
	op     sync.Mutex
	mu     sync.Mutex
	link   *link
	state  domain.ChannelState
	active atomic.Int32

	balance subscription.Listeners[domain.BalanceUpdateEvent]
	states  subscription.Listeners[domain.ChannelState]
}

func NewManager(transport Transport, store Store) *Manager {
	return &Manager{
		transport:  transport,
		store:      store,
		minBackoff: minBackoff,
		maxBackoff: maxBackoff,
		newPool:    func() WorkerPoolI { return NewWorkerPool(1, queueSize) },
		state:      domain.ChannelState{Status: domain.ChannelDisconnected},
	}
}

// Connect starts a connection for tenantID in the background, tearing down a
// connection held for another tenant first. Connecting to the tenant that is
// already active is a no-op; an empty tenant id disconnects.
func (m *Manager) Connect(tenantID string) {
	if tenantID == "" {
		m.Disconnect()
		return
	}

	m.op.Lock()
	defer m.op.Unlock()

	m.mu.Lock()
	current := m.link
	m.mu.Unlock()
	if current != nil {
		if current.tenantID == tenantID {
			return
		}
		m.teardown()
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &link{tenantID: tenantID, cancel: cancel, done: make(chan struct{})}

	m.mu.Lock()
	m.link = l
	m.mu.Unlock()
	m.setState(l, domain.ChannelState{TenantID: tenantID, Status: domain.ChannelConnecting})

	go m.run(ctx, l)
}

// Disconnect closes the connection and stops reconnecting. No balance or
// state callback of the closed connection runs after it returns. Handlers
// must not call Disconnect or Connect themselves.
func (m *Manager) Disconnect() {
	m.op.Lock()
	defer m.op.Unlock()
	m.teardown()
}

func (m *Manager) teardown() {
	m.mu.Lock()
	l := m.link
	m.link = nil
	m.mu.Unlock()
	if l == nil {
		return
	}

	l.cancel()
	<-l.done

	state := domain.ChannelState{Status: domain.ChannelDisconnected}
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()
	m.states.Notify(state)

	zap.L().Info("push channel closed", zap.String("tenantID", l.tenantID))
}

// OnBalanceUpdate registers fn for balance updates accepted by the store.
func (m *Manager) OnBalanceUpdate(fn func(domain.BalanceUpdateEvent)) *subscription.Subscription {
	return m.balance.Add(fn)
}

func (m *Manager) OnStateChange(fn func(domain.ChannelState)) *subscription.Subscription {
	return m.states.Add(fn)
}

func (m *Manager) State() domain.ChannelState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// ActiveConnections is the number of transport connections currently open.
func (m *Manager) ActiveConnections() int {
	return int(m.active.Load())
}

func (m *Manager) run(ctx context.Context, l *link) {
	defer close(l.done)

	retry := 0
	for {
		connected, err := m.session(ctx, l, retry)
		if ctx.Err() != nil {
			return
		}

		if connected {
			retry = 0
		}
		retry++
		zap.L().Warn("push channel lost, reconnecting",
			zap.String("tenantID", l.tenantID),
			zap.Int("retry", retry),
			zap.Error(err),
		)
		m.setState(l, domain.ChannelState{TenantID: l.tenantID, Status: domain.ChannelDisconnected, RetryCount: retry})

		if utils.Sleep(ctx, m.backoff(retry)) != nil {
			return
		}
		m.setState(l, domain.ChannelState{TenantID: l.tenantID, Status: domain.ChannelConnecting, RetryCount: retry})
	}
}

// session dials once and reads until the connection fails. It reports
// whether the dial succeeded so the caller can restart its retry count.
func (m *Manager) session(ctx context.Context, l *link, retry int) (bool, error) {
	conn, err := m.transport.Dial(ctx, l.tenantID)
	if err != nil {
		return false, err
	}
	m.active.Add(1)
	defer m.active.Add(-1)
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	connectionID := uuid.NewString()
	pool := m.newPool()
	defer pool.Close()

	zap.L().Info("push channel connected",
		zap.String("tenantID", l.tenantID),
		zap.String("connectionID", connectionID),
		zap.Int("afterRetries", retry),
	)
	m.setState(l, domain.ChannelState{TenantID: l.tenantID, Status: domain.ChannelConnected, ConnectionID: connectionID})

	for {
		msg, err := conn.Receive()
		if err != nil {
			return true, err
		}
		err = pool.AddTask(ctx, func() error {
			if ctx.Err() != nil {
				return nil
			}
			return m.dispatch(ctx, l, msg)
		})
		if err != nil {
			return true, err
		}
	}
}

func (m *Manager) dispatch(ctx context.Context, l *link, msg Message) error {
	if msg.Event != BalanceUpdateEvent {
		zap.L().Debug("ignoring push event", zap.String("event", msg.Event))
		return nil
	}

	var payload dto.BalanceUpdateEventDTO
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		zap.L().Warn("malformed balance update", zap.String("tenantID", l.tenantID), zap.Error(err))
		return nil
	}
	event, err := payload.ToDomain()
	if err != nil {
		zap.L().Warn("invalid balance update", zap.String("tenantID", l.tenantID), zap.Error(err))
		return nil
	}
	if event.TenantID == "" {
		event.TenantID = l.tenantID
	}

	if err := m.store.ApplyPushEvent(ctx, event); err != nil {
		return fmt.Errorf("apply balance update: %w", err)
	}
	m.balance.Notify(event)
	return nil
}

func (m *Manager) backoff(retry int) time.Duration {
	d := m.minBackoff
	for i := 1; i < retry && d < m.maxBackoff; i++ {
		d *= 2
	}
	if d > m.maxBackoff {
		d = m.maxBackoff
	}
	return d
}

// setState publishes state for l unless l has been replaced or torn down.
func (m *Manager) setState(l *link, state domain.ChannelState) {
	m.mu.Lock()
	if m.link != l {
		m.mu.Unlock()
		return
	}
	m.state = state
	m.mu.Unlock()
	m.states.Notify(state)
}
