package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
)

type CreatePaymentRequestDTO struct {
	Amount int64 `json:"amount" example:"100000"`
}

// CreatePaymentInputDTO is the local api body; the amount is validated by the controller.
type CreatePaymentInputDTO struct {
	Amount json.Number `json:"amount" example:"100000"`
}

type PaymentInfoDTO struct {
	Account string `json:"account" example:"0123456789"`
	Bank    string `json:"bank" example:"VCB"`
	Amount  Amount `json:"amount" example:"100000"`
	Content string `json:"content" example:"PAY123"`
}

type PaymentDTO struct {
	ID          string          `json:"id"`
	Code        string          `json:"code" example:"PAY123"`
	Amount      Amount          `json:"amount" example:"100000"`
	Status      string          `json:"status,omitempty" example:"pending"`
	QRCode      string          `json:"qrCode,omitempty"`
	QRCodeData  string          `json:"qrCodeData,omitempty"`
	ExpiresAt   *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	CancelledAt *time.Time      `json:"cancelledAt,omitempty"`
	PaymentInfo *PaymentInfoDTO `json:"paymentInfo,omitempty"`
}

func (p PaymentDTO) ToDomain() domain.Payment {
	payment := domain.Payment{
		ID:          p.ID,
		Code:        p.Code,
		Amount:      int64(p.Amount),
		Status:      domain.PaymentStatus(p.Status),
		QRCode:      p.QRCode,
		QRCodeData:  p.QRCodeData,
		ExpiresAt:   p.ExpiresAt,
		CompletedAt: p.CompletedAt,
		CancelledAt: p.CancelledAt,
	}
	if p.CreatedAt != nil {
		payment.CreatedAt = *p.CreatedAt
	}
	if p.PaymentInfo != nil {
		payment.Info = &domain.PaymentInfo{
			Account: p.PaymentInfo.Account,
			Bank:    p.PaymentInfo.Bank,
			Amount:  int64(p.PaymentInfo.Amount),
			Content: p.PaymentInfo.Content,
		}
	}
	return payment
}

func PaymentFromDomain(p domain.Payment) PaymentDTO {
	out := PaymentDTO{
		ID:          p.ID,
		Code:        p.Code,
		Amount:      Amount(p.Amount),
		Status:      string(p.Status),
		QRCode:      p.QRCode,
		QRCodeData:  p.QRCodeData,
		ExpiresAt:   p.ExpiresAt,
		CompletedAt: p.CompletedAt,
		CancelledAt: p.CancelledAt,
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		out.CreatedAt = &createdAt
	}
	if p.Info != nil {
		out.PaymentInfo = &PaymentInfoDTO{
			Account: p.Info.Account,
			Bank:    p.Info.Bank,
			Amount:  Amount(p.Info.Amount),
			Content: p.Info.Content,
		}
	}
	return out
}

type PaymentStatusResponseDTO struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Amount Amount `json:"amount"`
}

type CancelPaymentResponseDTO struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Status      string    `json:"status"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type PendingPaymentResponseDTO struct {
	State            string      `json:"state" example:"pending"`
	Payment          *PaymentDTO `json:"payment,omitempty"`
	LastOutcome      string      `json:"lastOutcome,omitempty" example:"completed"`
	RemainingSeconds int64       `json:"remainingSeconds" example:"840"`
	Cancelling       bool        `json:"cancelling" example:"false"`
}

type PaymentStatusOutputDTO struct {
	Status string `json:"status" example:"pending"`
}

type PaymentHistoryResponseDTO struct {
	Payments []PaymentDTO       `json:"payments"`
	Meta     *PaginationMetaDTO `json:"meta,omitempty"`
}
