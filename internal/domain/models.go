package domain

import "time"

// MinPaymentAmount is the smallest top-up the platform accepts, in VND.
const MinPaymentAmount int64 = 10000

type Source string

const (
	SourceInitial Source = "initial"
	SourcePoll    Source = "poll"
	SourcePush    Source = "push"
)

type Balances struct {
	VND    int64
	Credit int64
}

// WalletSnapshot is the best known wallet of the active tenant.
type WalletSnapshot struct {
	VND       int64
	Credit    int64
	Source    Source
	UpdatedAt time.Time
}

func (s WalletSnapshot) Balances() Balances {
	return Balances{VND: s.VND, Credit: s.Credit}
}

type BalanceUpdateEvent struct {
	TenantID  string
	Balances  Balances
	Timestamp time.Time
}

type ChannelStatus string

const (
	ChannelDisconnected ChannelStatus = "disconnected"
	ChannelConnecting   ChannelStatus = "connecting"
	ChannelConnected    ChannelStatus = "connected"
)

type ChannelState struct {
	TenantID     string
	Status       ChannelStatus
	RetryCount   int
	ConnectionID string
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentExpired    PaymentStatus = "expired"
	PaymentCancelled  PaymentStatus = "cancelled"
	// PaymentResolved marks a payment that is no longer pending on the
	// server while its final status is unknown to the client.
	PaymentResolved PaymentStatus = "resolved"
)

// Open reports whether the payment still awaits the bank transfer.
func (s PaymentStatus) Open() bool {
	return s == PaymentPending || s == PaymentProcessing
}

type PaymentInfo struct {
	Account string
	Bank    string
	Amount  int64
	Content string
}

type Payment struct {
	ID          string
	Code        string
	Amount      int64
	Status      PaymentStatus
	QRCode      string
	QRCodeData  string
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	Info        *PaymentInfo
}

// Remaining returns the advisory time left before the payment expires.
func (p *Payment) Remaining(now time.Time) time.Duration {
	if p == nil || p.ExpiresAt == nil {
		return 0
	}
	left := p.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

type PaymentStatusResult struct {
	Code   string
	Status PaymentStatus
	Amount int64
}

type CancelResult struct {
	ID          string
	Code        string
	Status      PaymentStatus
	CancelledAt time.Time
}

type PaymentFilter struct {
	Page   int
	Limit  int
	Status PaymentStatus
}

type PageMeta struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

type TenantMembership struct {
	ID   string
	Name string
	Slug string
	Role string
}

type Credentials struct {
	AccessToken  string
	RefreshToken string
	TenantID     string
	TenantSlug   string
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	Tenants      []TenantMembership
	Wallet       *Balances
}
