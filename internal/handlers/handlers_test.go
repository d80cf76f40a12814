package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/walletsync/internal/config"
	"github.com/GlebRadaev/walletsync/internal/handlers/ws"
	"github.com/GlebRadaev/walletsync/internal/service"
	"github.com/GlebRadaev/walletsync/internal/session"
	"github.com/GlebRadaev/walletsync/pkg/clients"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type sessionStub struct {
	active bool
}

func (s *sessionStub) Active() bool {
	return s.active
}

func newServices(t *testing.T) *service.Services {
	t.Helper()
	cfg := &config.Config{
		APIAddress:     "http://127.0.0.1:1",
		PushAddress:    "ws://127.0.0.1:1/socket.io/",
		PollInterval:   time.Minute,
		StatusInterval: time.Minute,
	}
	s := service.New(cfg, session.New(session.NewMemoryCache()), clients.NewHTTPClient())
	t.Cleanup(s.Close)
	return s
}

func TestNew(t *testing.T) {
	hub := ws.NewHub(nil)
	defer hub.Close()

	h := New(newServices(t), hub, []string{"http://localhost:3000"})

	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.PaymentsHandler)
	assert.NotNil(t, h.SessionHandler)
	assert.NotNil(t, h.RealtimeHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockPaymentsHandler := NewMockPaymentsHandler(ctrl)
	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockRealtimeHandler := NewMockRealtimeHandler(ctrl)

	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().RefreshWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetChannel(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().GetPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().CheckStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().CancelPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().GetQRCode(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentsHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().SwitchTenant(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockRealtimeHandler.EXPECT().HandleWS(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:   mockWalletHandler,
		PaymentsHandler: mockPaymentsHandler,
		SessionHandler:  mockSessionHandler,
		RealtimeHandler: mockRealtimeHandler,
		Session:         &sessionStub{active: true},
		AllowedOrigins:  []string{"http://localhost:3000"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/wallet", http.StatusOK},
		{"POST", "/api/wallet/refresh", http.StatusOK},
		{"GET", "/api/channel", http.StatusOK},
		{"POST", "/api/payments", http.StatusOK},
		{"GET", "/api/payments/history", http.StatusOK},
		{"GET", "/api/payments/pending", http.StatusOK},
		{"DELETE", "/api/payments/pending", http.StatusOK},
		{"POST", "/api/payments/pending/check", http.StatusOK},
		{"GET", "/api/payments/pending/qr.png", http.StatusOK},
		{"POST", "/api/session/tenant", http.StatusOK},
		{"POST", "/api/session/logout", http.StatusOK},
		{"GET", "/api/ws", http.StatusOK},
		{"GET", "/api/payments/pending/check", http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_SignedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockRealtimeHandler := NewMockRealtimeHandler(ctrl)
	mockSessionHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()
	mockRealtimeHandler.EXPECT().HandleWS(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:   NewMockWalletHandler(ctrl),
		PaymentsHandler: NewMockPaymentsHandler(ctrl),
		SessionHandler:  mockSessionHandler,
		RealtimeHandler: mockRealtimeHandler,
		Session:         &sessionStub{},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"POST", "/api/payments", http.StatusUnauthorized},
		{"GET", "/api/payments/pending/qr.png", http.StatusUnauthorized},
		{"POST", "/api/session/tenant", http.StatusUnauthorized},
		{"POST", "/api/session/logout", http.StatusOK},
		{"GET", "/api/ws", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_CORS(t *testing.T) {
	h := &Handlers{AllowedOrigins: []string{"http://localhost:3000"}, Session: &sessionStub{active: true}}
	ctrl := gomock.NewController(t)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	h.WalletHandler = mockWalletHandler
	h.PaymentsHandler = NewMockPaymentsHandler(ctrl)
	h.SessionHandler = NewMockSessionHandler(ctrl)
	h.RealtimeHandler = NewMockRealtimeHandler(ctrl)

	router := chi.NewRouter()
	h.InitRoutes(router)

	req := httptest.NewRequest(http.MethodOptions, "/api/wallet", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestForward(t *testing.T) {
	s := newServices(t)
	hub := ws.NewHub(nil)
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	defer srv.Close()
	defer hub.Close()

	subs := Forward(s, hub)
	defer func() {
		for _, sub := range subs {
			sub.Close()
		}
	}()

	s.Wallet.Initialize(context.Background(), "t1")

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type string `json:"type"`
		Data struct {
			Loaded bool `json:"loaded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, ws.EventWallet, event.Type)
	assert.False(t, event.Data.Loaded)
}
