package dto

import (
	"errors"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
)

type BalancesDTO struct {
	VND    *Amount `json:"vnd"`
	Credit *Amount `json:"credit"`
}

func (b BalancesDTO) ToDomain() (domain.Balances, error) {
	vnd, errVND := b.VND.value("vnd")
	credit, errCredit := b.Credit.value("credit")
	if err := errors.Join(errVND, errCredit); err != nil {
		return domain.Balances{}, err
	}
	return domain.Balances{VND: vnd, Credit: credit}, nil
}

type AllBalancesResponseDTO struct {
	Balances BalancesDTO `json:"balances"`
	TenantID string      `json:"tenantId"`
}

type BalanceUpdateEventDTO struct {
	TenantID  string      `json:"tenantId"`
	Balances  BalancesDTO `json:"balances"`
	Timestamp string      `json:"timestamp"`
}

func (e BalanceUpdateEventDTO) ToDomain() (domain.BalanceUpdateEvent, error) {
	balances, err := e.Balances.ToDomain()
	if err != nil {
		return domain.BalanceUpdateEvent{}, err
	}
	ts, _ := time.Parse(time.RFC3339Nano, e.Timestamp)
	return domain.BalanceUpdateEvent{
		TenantID:  e.TenantID,
		Balances:  balances,
		Timestamp: ts,
	}, nil
}

// CachedWalletDTO is the persisted form of a wallet snapshot.
type CachedWalletDTO struct {
	VNDBalance    *Amount   `json:"vndBalance"`
	CreditBalance *Amount   `json:"creditBalance"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}

func (c CachedWalletDTO) ToDomain() (domain.WalletSnapshot, error) {
	vnd, errVND := c.VNDBalance.value("vndBalance")
	credit, errCredit := c.CreditBalance.value("creditBalance")
	if err := errors.Join(errVND, errCredit); err != nil {
		return domain.WalletSnapshot{}, err
	}
	return domain.WalletSnapshot{
		VND:       vnd,
		Credit:    credit,
		Source:    domain.SourceInitial,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func CachedWalletFromDomain(s domain.WalletSnapshot) CachedWalletDTO {
	return CachedWalletDTO{
		VNDBalance:    amountPtr(s.VND),
		CreditBalance: amountPtr(s.Credit),
		UpdatedAt:     s.UpdatedAt,
	}
}

type WalletResponseDTO struct {
	VNDBalance    int64      `json:"vndBalance" example:"250000"`
	CreditBalance int64      `json:"creditBalance" example:"1200"`
	Source        string     `json:"source,omitempty" example:"push"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty" example:"2024-12-09T16:09:57+07:00"`
	Loaded        bool       `json:"loaded" example:"true"`
	Stale         bool       `json:"stale" example:"false"`
	Error         string     `json:"error,omitempty"`
}

type ChannelResponseDTO struct {
	TenantID     string `json:"tenantId" example:"t1"`
	Status       string `json:"status" example:"connected"`
	RetryCount   int    `json:"retryCount" example:"0"`
	ConnectionID string `json:"connectionId,omitempty"`
}

func ChannelFromDomain(s domain.ChannelState) ChannelResponseDTO {
	return ChannelResponseDTO{
		TenantID:     s.TenantID,
		Status:       string(s.Status),
		RetryCount:   s.RetryCount,
		ConnectionID: s.ConnectionID,
	}
}
