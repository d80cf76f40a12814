package session

//go:generate mockgen -source=session.go -destination=mock_session.go -package=session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/internal/handlers/apierr"
	"github.com/GlebRadaev/walletsync/pkg/utils"
)

type Service interface {
	SwitchTenant(ctx context.Context, tenantID, tenantSlug string) error
	Logout(ctx context.Context) error
}

type SessionHandler struct {
	service Service
}

func New(service Service) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// SwitchTenant godoc
//
//	@Summary		Switch active tenant
//	@Description	Move the wallet, push channel and payment state to another tenant.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SwitchTenantRequestDTO	true	"Target tenant"
//	@Success		200		{object}	utils.Response				"Tenant switched"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"No active session"
//	@Router			/api/session/tenant [post]
func (h *SessionHandler) SwitchTenant(w http.ResponseWriter, r *http.Request) {
	var req dto.SwitchTenantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.TenantID) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "tenantId is required")
		return
	}

	if err := h.service.SwitchTenant(r.Context(), req.TenantID, req.TenantSlug); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "tenant switched"})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Stop realtime updates and payment polling and forget the session.
//	@Tags			Session
//	@Success		204	"Logged out"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
