package wallet

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/internal/handlers/apierr"
	"github.com/GlebRadaev/walletsync/internal/service/walletstore"
	"github.com/GlebRadaev/walletsync/pkg/utils"
)

type Store interface {
	State() walletstore.State
	Refresh(ctx context.Context) error
}

type Channel interface {
	State() domain.ChannelState
}

type WalletHandler struct {
	store   Store
	channel Channel
}

func New(store Store, channel Channel) *WalletHandler {
	return &WalletHandler{
		store:   store,
		channel: channel,
	}
}

// Response converts the store state into its api form.
func Response(state walletstore.State) dto.WalletResponseDTO {
	resp := dto.WalletResponseDTO{
		VNDBalance:    state.Snapshot.VND,
		CreditBalance: state.Snapshot.Credit,
		Source:        string(state.Snapshot.Source),
		Loaded:        state.Loaded,
		Stale:         state.Stale,
	}
	if !state.Snapshot.UpdatedAt.IsZero() {
		updatedAt := state.Snapshot.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	if state.Err != nil {
		resp.Error = state.Err.Error()
	}
	return resp
}

// GetWallet godoc
//
//	@Summary		Get wallet balances
//	@Description	Return the reconciled VND and credit balances of the active tenant.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current wallet"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, Response(h.store.State()))
}

// RefreshWallet godoc
//
//	@Summary		Refresh wallet balances
//	@Description	Fetch balances from the platform now. On failure the last known balances are kept and marked stale.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Refreshed wallet"
//	@Failure		401	{object}	utils.Response			"Session expired"
//	@Failure		502	{object}	utils.Response			"Platform unavailable"
//	@Router			/api/wallet/refresh [post]
func (h *WalletHandler) RefreshWallet(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Refresh(r.Context()); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, Response(h.store.State()))
}

// GetChannel godoc
//
//	@Summary		Get push channel state
//	@Description	Return the connection state of the realtime balance channel.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.ChannelResponseDTO	"Channel state"
//	@Router			/api/channel [get]
func (h *WalletHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.ChannelFromDomain(h.channel.State()))
}
