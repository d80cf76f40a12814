// Package ws fans wallet, payment and channel updates out to the rendering
// layer over WebSocket.
package ws

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/olahol/melody"
	"go.uber.org/zap"
)

const (
	EventWallet  = "wallet"
	EventPayment = "payment"
	EventChannel = "channel"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Hub struct {
	m *melody.Melody

	mu    sync.RWMutex
	last  map[string][]byte
	order []string
}

func NewHub(allowedOrigins []string) *Hub {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second
	m.Upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
	}

	h := &Hub{
		m:    m,
		last: make(map[string][]byte),
	}

	m.HandleConnect(h.replay)
	m.HandleDisconnect(func(s *melody.Session) {
		zap.L().Debug("ws client disconnected", zap.String("remote", s.Request.RemoteAddr))
	})
	m.HandleError(func(s *melody.Session, err error) {
		zap.L().Debug("ws client error", zap.String("remote", s.Request.RemoteAddr), zap.Error(err))
	})
	return h
}

// HandleWS godoc
//
//	@Summary		Subscribe to updates
//	@Description	WebSocket stream of {"type":"wallet"|"payment"|"channel","data":...} frames. The latest frame of each type is sent on connect.
//	@Tags			Realtime
//	@Success		101	"Switching protocols"
//	@Router			/api/ws [get]
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	if err := h.m.HandleRequest(w, r); err != nil {
		zap.L().Warn("failed to upgrade websocket", zap.Error(err))
	}
}

// Broadcast sends an update to every client and remembers it for clients
// connecting later.
func (h *Hub) Broadcast(kind string, data any) {
	msg, err := json.Marshal(Event{Type: kind, Data: data})
	if err != nil {
		zap.L().Error("failed to encode ws event", zap.String("type", kind), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.last[kind]; !ok {
		h.order = append(h.order, kind)
	}
	h.last[kind] = msg

	if h.m.IsClosed() {
		return
	}
	if err := h.m.Broadcast(msg); err != nil {
		zap.L().Warn("failed to broadcast ws event", zap.String("type", kind), zap.Error(err))
	}
}

func (h *Hub) Len() int {
	return h.m.Len()
}

func (h *Hub) Close() error {
	if h.m.IsClosed() {
		return nil
	}
	return h.m.Close()
}

// replay runs before the session receives broadcasts; holding mu keeps
// replayed frames ordered before newer ones.
func (h *Hub) replay(s *melody.Session) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, kind := range h.order {
		if err := s.Write(h.last[kind]); err != nil {
			zap.L().Debug("failed to replay ws event", zap.Error(err))
			return
		}
	}
}
