package payments

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/internal/handlers/apierr"
	"github.com/GlebRadaev/walletsync/internal/service/payment"
	"github.com/GlebRadaev/walletsync/pkg/utils"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	qrSize          = 256
	maxHistoryLimit = 100
)

type Controller interface {
	Create(ctx context.Context, amount int64) (*domain.Payment, error)
	CheckStatus(ctx context.Context) (domain.PaymentStatus, error)
	Cancel(ctx context.Context) error
	Status() payment.Status
}

type History interface {
	GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, *domain.PageMeta, error)
}

type PaymentsHandler struct {
	controller Controller
	history    History
}

func New(controller Controller, history History) *PaymentsHandler {
	return &PaymentsHandler{
		controller: controller,
		history:    history,
	}
}

// PendingResponse converts the controller status into its api form.
func PendingResponse(status payment.Status) dto.PendingPaymentResponseDTO {
	resp := dto.PendingPaymentResponseDTO{
		State:            string(status.State),
		LastOutcome:      string(status.LastOutcome),
		RemainingSeconds: int64(status.Remaining / time.Second),
		Cancelling:       status.Cancelling,
	}
	if status.Payment != nil {
		p := dto.PaymentFromDomain(*status.Payment)
		resp.Payment = &p
	}
	return resp
}

// GetPending godoc
//
//	@Summary		Get pending payment
//	@Description	Return the payment lifecycle state together with the pending payment, if any.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.PendingPaymentResponseDTO	"Payment state"
//	@Router			/api/payments/pending [get]
func (h *PaymentsHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, PendingResponse(h.controller.Status()))
}

// CreatePayment godoc
//
//	@Summary		Create a top-up payment
//	@Description	Create a bank transfer payment. Only one payment may be pending per tenant.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentInputDTO	true	"Payment amount in VND"
//	@Success		201		{object}	dto.PaymentDTO				"Created payment"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		409		{object}	utils.Response				"Payment already pending"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		502		{object}	utils.Response				"Platform unavailable"
//	@Router			/api/payments [post]
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentInputDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := payment.ParseAmount(req.Amount.String())
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	created, err := h.controller.Create(r.Context(), amount)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentFromDomain(*created))
}

// CheckStatus godoc
//
//	@Summary		Check pending payment status
//	@Description	Ask the platform for the status of the pending payment now.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.PaymentStatusOutputDTO	"Payment status"
//	@Failure		404	{object}	utils.Response				"No pending payment"
//	@Failure		409	{object}	utils.Response				"Payment changed meanwhile"
//	@Failure		502	{object}	utils.Response				"Platform unavailable"
//	@Router			/api/payments/pending/check [post]
func (h *PaymentsHandler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.controller.CheckStatus(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusOutputDTO{Status: string(status)})
}

// CancelPayment godoc
//
//	@Summary		Cancel pending payment
//	@Description	Cancel the pending payment of the active tenant.
//	@Tags			Payments
//	@Produce		json
//	@Success		200	{object}	dto.PendingPaymentResponseDTO	"Payment state after cancellation"
//	@Failure		404	{object}	utils.Response					"No pending payment"
//	@Failure		409	{object}	utils.Response					"Cancellation already in progress"
//	@Failure		502	{object}	utils.Response					"Platform unavailable"
//	@Router			/api/payments/pending [delete]
func (h *PaymentsHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Cancel(r.Context()); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, PendingResponse(h.controller.Status()))
}

// GetQRCode godoc
//
//	@Summary		Render payment QR code
//	@Description	Render the bank transfer QR code of the pending payment as PNG.
//	@Tags			Payments
//	@Produce		png
//	@Success		200	{file}		binary			"QR code"
//	@Failure		404	{object}	utils.Response	"No QR code available"
//	@Router			/api/payments/pending/qr.png [get]
func (h *PaymentsHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	status := h.controller.Status()
	if status.Payment == nil || status.Payment.QRCodeData == "" {
		utils.RespondWithError(w, http.StatusNotFound, "no qr code available")
		return
	}

	png, err := qrcode.Encode(status.Payment.QRCodeData, qrcode.Medium, qrSize)
	if err != nil {
		zap.L().Error("failed to render qr code", zap.String("code", status.Payment.Code), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GetHistory godoc
//
//	@Summary		List payments
//	@Description	List the payments of the active tenant, newest first.
//	@Tags			Payments
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{object}	dto.PaymentHistoryResponseDTO	"Payments page"
//	@Failure		400		{object}	utils.Response					"Invalid query"
//	@Failure		502		{object}	utils.Response					"Platform unavailable"
//	@Router			/api/payments/history [get]
func (h *PaymentsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, meta, err := h.history.GetPayments(r.Context(), filter)
	if err != nil {
		apierr.Respond(w, err)
		return
	}

	resp := dto.PaymentHistoryResponseDTO{Payments: make([]dto.PaymentDTO, len(list))}
	for i, p := range list {
		resp.Payments[i] = dto.PaymentFromDomain(p)
	}
	if meta != nil {
		resp.Meta = &dto.PaginationMetaDTO{
			Page:       meta.Page,
			Limit:      meta.Limit,
			Total:      meta.Total,
			TotalPages: meta.TotalPages,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func parseFilter(r *http.Request) (domain.PaymentFilter, error) {
	query := r.URL.Query()
	filter := domain.PaymentFilter{Status: domain.PaymentStatus(query.Get("status"))}

	var err error
	if v := query.Get("page"); v != "" {
		if filter.Page, err = strconv.Atoi(v); err != nil || filter.Page < 1 {
			return filter, fmt.Errorf("invalid page: %q", v)
		}
	}
	if v := query.Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil || filter.Limit < 1 || filter.Limit > maxHistoryLimit {
			return filter, fmt.Errorf("invalid limit: %q", v)
		}
	}
	return filter, nil
}
