package billing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"vaultguard/models"
)

// HTTPClientConfig configures the REST client for the billing provider.
type HTTPClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewHTTPClient builds a [Client] over the provider's REST API. The timeout
// bounds every call; a timed-out call surfaces as [ErrUnavailable], never
// as a hang.
func NewHTTPClient(cfg HTTPClientConfig) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &httpClient{client: cli}
}

func (h *httpClient) FindCustomerByLicenseKey(ctx context.Context, licenseKey string) (models.Customer, error) {
	var out struct {
		Data []models.Customer `json:"data"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("query", fmt.Sprintf("metadata[%q]:%q", models.MetaLicenseKey, licenseKey)).
		SetResult(&out).
		Get("/v1/customers/search")
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: search customer: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	if len(out.Data) == 0 {
		return models.Customer{}, fmt.Errorf("%w: no customer tagged with license key", ErrNotFound)
	}
	return out.Data[0], nil
}

func (h *httpClient) GetSession(ctx context.Context, sessionID string) (models.CheckoutSession, error) {
	var session models.CheckoutSession

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&session).
		Get("/v1/checkout/sessions/" + sessionID)
	if err != nil {
		return models.CheckoutSession{}, fmt.Errorf("%w: get session: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckoutSession{}, err
	}

	return session, nil
}

func (h *httpClient) ListCompletedSessions(ctx context.Context, limit int) ([]models.CheckoutSession, error) {
	var out struct {
		Data []models.CheckoutSession `json:"data"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("status", "complete").
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/v1/checkout/sessions")
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Data, nil
}

func (h *httpClient) GetSubscription(ctx context.Context, subscriptionID string) (models.Subscription, error) {
	var sub models.Subscription

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&sub).
		Get("/v1/subscriptions/" + subscriptionID)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%w: get subscription: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Subscription{}, err
	}

	return sub, nil
}

func (h *httpClient) UpdateCustomerMetadata(ctx context.Context, customerID string, metadata map[string]string) error {
	form := make(map[string]string, len(metadata))
	for k, v := range metadata {
		form["metadata["+k+"]"] = v
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/v1/customers/" + customerID)
	if err != nil {
		return fmt.Errorf("%w: update customer metadata: %w", ErrUnavailable, err)
	}
	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode(), body)
	}
}

// IsTransient reports whether err represents a provider failure (as opposed
// to a definite "resource does not exist" answer). Validation resolves
// transient failures to "unable to verify", never to "valid".
func IsTransient(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound)
}
