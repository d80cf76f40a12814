// Package api is the client of the platform REST api.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GlebRadaev/walletsync/internal/domain"
	"github.com/GlebRadaev/walletsync/internal/dto"
	"github.com/GlebRadaev/walletsync/pkg/auth"
	"github.com/GlebRadaev/walletsync/pkg/clients"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	apiPrefix           = "/api/v1"
	defaultRetryAfter   = time.Second
	tenantSlugHeader    = "x-tenant-slug"
	requestIDHeader     = "x-request-id"
	contentTypeJSONBody = "application/json"
)

// Session supplies the credentials attached to every request.
type Session interface {
	Token() (string, error)
	TenantSlug() string
}

// Error is a non-2xx platform answer. It unwraps to one of the domain sentinels.
type Error struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.kind, e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.kind
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
	session Session
}

func New(baseURL string, client clients.HTTPClientI, session Session) *Client {
	return &Client{
		baseURL: baseURL + apiPrefix,
		client:  client,
		session: session,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	var resp dto.AuthResponseDTO
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequestDTO{Email: email, Password: password}, false, &resp); err != nil {
		return nil, err
	}

	result := &domain.LoginResult{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}
	for _, t := range resp.Tenants {
		result.Tenants = append(result.Tenants, domain.TenantMembership{ID: t.ID, Name: t.Name, Slug: t.Slug, Role: t.Role})
	}
	if resp.Wallet != nil {
		if wallet, err := resp.Wallet.ToDomain(); err == nil {
			balances := wallet.Balances()
			result.Wallet = &balances
		}
	}
	return result, nil
}

func (c *Client) GetBalances(ctx context.Context) (domain.Balances, error) {
	var resp dto.AllBalancesResponseDTO
	if _, err := c.do(ctx, http.MethodGet, "/credits/balances", nil, true, &resp); err != nil {
		return domain.Balances{}, err
	}
	balances, err := resp.Balances.ToDomain()
	if err != nil {
		return domain.Balances{}, fmt.Errorf("invalid balances payload: %w", err)
	}
	return balances, nil
}

func (c *Client) CreatePayment(ctx context.Context, amount int64) (*domain.Payment, error) {
	var resp dto.PaymentDTO
	if _, err := c.do(ctx, http.MethodPost, "/admin/payments", dto.CreatePaymentRequestDTO{Amount: amount}, true, &resp); err != nil {
		return nil, err
	}
	payment := resp.ToDomain()
	if payment.Status == "" {
		payment.Status = domain.PaymentPending
	}
	return &payment, nil
}

func (c *Client) GetPendingPayment(ctx context.Context) (*domain.Payment, error) {
	var resp dto.PaymentDTO
	if _, err := c.do(ctx, http.MethodGet, "/admin/payments/pending", nil, true, &resp); err != nil {
		return nil, err
	}
	payment := resp.ToDomain()
	return &payment, nil
}

func (c *Client) CancelPendingPayment(ctx context.Context) (*domain.CancelResult, error) {
	var resp dto.CancelPaymentResponseDTO
	if _, err := c.do(ctx, http.MethodDelete, "/admin/payments/pending", nil, true, &resp); err != nil {
		return nil, err
	}
	return &domain.CancelResult{
		ID:          resp.ID,
		Code:        resp.Code,
		Status:      domain.PaymentStatus(resp.Status),
		CancelledAt: resp.CancelledAt,
	}, nil
}

func (c *Client) GetPaymentStatus(ctx context.Context, code string) (*domain.PaymentStatusResult, error) {
	var resp dto.PaymentStatusResponseDTO
	if _, err := c.do(ctx, http.MethodGet, "/admin/payments/status/"+url.PathEscape(code), nil, true, &resp); err != nil {
		return nil, err
	}
	return &domain.PaymentStatusResult{
		Code:   resp.Code,
		Status: domain.PaymentStatus(resp.Status),
		Amount: int64(resp.Amount),
	}, nil
}

func (c *Client) GetPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, *domain.PageMeta, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	path := "/admin/payments"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp []dto.PaymentDTO
	meta, err := c.do(ctx, http.MethodGet, path, nil, true, &resp)
	if err != nil {
		return nil, nil, err
	}

	payments := make([]domain.Payment, len(resp))
	for i, p := range resp {
		payments[i] = p.ToDomain()
	}
	var page *domain.PageMeta
	if meta != nil {
		page = &domain.PageMeta{Page: meta.Page, Limit: meta.Limit, Total: meta.Total, TotalPages: meta.TotalPages}
	}
	return payments, page, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, authorized bool, out any) (*dto.PaginationMetaDTO, error) {
	headers := http.Header{}
	headers.Set("Accept", contentTypeJSONBody)
	headers.Set(requestIDHeader, uuid.NewString())
	if authorized {
		token, err := c.session.Token()
		if err != nil {
			return nil, err
		}
		headers.Set("Authorization", auth.BearerHeader(token))
		if slug := c.session.TenantSlug(); slug != "" {
			headers.Set(tenantSlugHeader, slug)
		}
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		headers.Set("Content-Type", contentTypeJSONBody)
	}

	statusCode, respBody, respHeaders, err := c.client.Send(ctx, method, c.baseURL+path, headers, payload)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}

	if statusCode < 200 || statusCode >= 300 {
		apiErr := errorFromResponse(statusCode, respBody, respHeaders)
		zap.L().Debug("platform request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", statusCode),
			zap.Error(apiErr),
		)
		return nil, apiErr
	}

	envelope := dto.Envelope[json.RawMessage]{}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	if !envelope.Success {
		return nil, &Error{StatusCode: statusCode, Message: envelope.Message, kind: domain.ErrNetwork}
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("failed to parse response data: %w", err)
		}
	}
	return envelope.Meta, nil
}

func errorFromResponse(statusCode int, body []byte, headers http.Header) error {
	if statusCode == http.StatusTooManyRequests {
		retryAfter := defaultRetryAfter
		if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds >= 0 {
			retryAfter = time.Duration(seconds) * time.Second
		}
		return &domain.RateLimitError{RetryAfter: retryAfter}
	}

	message := http.StatusText(statusCode)
	var errResp dto.ErrorResponseDTO
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	return &Error{StatusCode: statusCode, Message: message, kind: kindOf(statusCode)}
}

func kindOf(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuth
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		return domain.ErrNetwork
	}
}
