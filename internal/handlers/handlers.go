package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/walletsync/docs"
	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	paymentshandlers "github.com/GlebRadaev/walletsync/internal/handlers/payments"
	sessionhandlers "github.com/GlebRadaev/walletsync/internal/handlers/session"
	wallethandlers "github.com/GlebRadaev/walletsync/internal/handlers/wallet"
	"github.com/GlebRadaev/walletsync/internal/handlers/ws"
	"github.com/GlebRadaev/walletsync/internal/service"
	"github.com/GlebRadaev/walletsync/internal/service/payment"
	"github.com/GlebRadaev/walletsync/internal/service/walletstore"
	"github.com/GlebRadaev/walletsync/pkg/auth"
	"github.com/GlebRadaev/walletsync/pkg/subscription"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	RefreshWallet(w http.ResponseWriter, r *http.Request)
	GetChannel(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	GetPending(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	CheckStatus(w http.ResponseWriter, r *http.Request)
	CancelPayment(w http.ResponseWriter, r *http.Request)
	GetQRCode(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	SwitchTenant(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type RealtimeHandler interface {
	HandleWS(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler   WalletHandler
	PaymentsHandler PaymentsHandler
	SessionHandler  SessionHandler
	RealtimeHandler RealtimeHandler

	Session        auth.SessionChecker
	AllowedOrigins []string
}

func New(s *service.Services, hub *ws.Hub, allowedOrigins []string) *Handlers {
	return &Handlers{
		WalletHandler:   wallethandlers.New(s.Wallet, s.Channel),
		PaymentsHandler: paymentshandlers.New(s.Payments, s.API),
		SessionHandler:  sessionhandlers.New(s),
		RealtimeHandler: hub,
		Session:         s.Session,
		AllowedOrigins:  allowedOrigins,
	}
}

// Forward pushes wallet, payment and channel changes to the hub. The caller
// closes the returned subscriptions on shutdown.
func Forward(s *service.Services, hub *ws.Hub) []*subscription.Subscription {
	return []*subscription.Subscription{
		s.Wallet.Subscribe(func(state walletstore.State) {
			hub.Broadcast(ws.EventWallet, wallethandlers.Response(state))
		}),
		s.Payments.Subscribe(func(status payment.Status) {
			hub.Broadcast(ws.EventPayment, paymentshandlers.PendingResponse(status))
		}),
		s.Channel.OnStateChange(func(state domain.ChannelState) {
			hub.Broadcast(ws.EventChannel, dto.ChannelFromDomain(state))
		}),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/ws", h.RealtimeHandler.HandleWS)
		r.Post("/session/logout", h.SessionHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(h.Session))
			r.Post("/session/tenant", h.SessionHandler.SwitchTenant)
			r.Get("/channel", h.WalletHandler.GetChannel)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Post("/refresh", h.WalletHandler.RefreshWallet)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentsHandler.CreatePayment)
				r.Get("/history", h.PaymentsHandler.GetHistory)
				r.Route("/pending", func(r chi.Router) {
					r.Get("/", h.PaymentsHandler.GetPending)
					r.Delete("/", h.PaymentsHandler.CancelPayment)
					r.Post("/check", h.PaymentsHandler.CheckStatus)
					r.Get("/qr.png", h.PaymentsHandler.GetQRCode)
				})
			})
		})
	})

	return r
}
