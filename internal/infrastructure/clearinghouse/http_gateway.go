package clearinghouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"claimflow/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoProvidersConfigured = errors.New("no clearinghouse providers configured")
	ErrInvalidProviderConfig = errors.New("invalid clearinghouse provider config")
)

const defaultProviderTimeout = 10 * time.Second

// ProviderConfig is one entry of the CLEARINGHOUSE_PROVIDERS env JSON array.
type ProviderConfig struct {
	Name      string `json:"name"`
	BaseURL   string `json:"base_url"`
	APIKey    string `json:"api_key"`
	TimeoutMS int    `json:"timeout_ms"`
	Priority  int    `json:"priority"`
}

func (c ProviderConfig) timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return defaultProviderTimeout
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// ParseProviderConfigs decodes the CLEARINGHOUSE_PROVIDERS JSON array.
func ParseProviderConfigs(raw string) ([]ProviderConfig, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNoProvidersConfigured
	}

	var cfgs []ProviderConfig
	if err := json.Unmarshal([]byte(raw), &cfgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProviderConfig, err)
	}
	if len(cfgs) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	for _, c := range cfgs {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.BaseURL) == "" {
			return nil, fmt.Errorf("%w: name and base_url are required", ErrInvalidProviderConfig)
		}
	}
	return cfgs, nil
}

// submitResponse is the clearinghouse wire reply for claim submission.
type submitResponse struct {
	ConfirmationNumber string `json:"confirmation_number"`
	TrackingNumber     string `json:"tracking_number"`
	ErrorCode          string `json:"error_code"`
	ErrorMessage       string `json:"error_message"`
}

// HTTPGateway submits claims to one clearinghouse over HTTP. Transport-level
// blips are retried in place by retryablehttp; anything that still fails is
// reported to the caller, which owns failover to the next provider.

type HTTPGateway struct {
	name    string
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *retryablehttp.Client
	log     *logrus.Entry
}

var _ interfaces.IProviderGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(cfg ProviderConfig, logger *logrus.Logger) *HTTPGateway {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 1
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 500 * time.Millisecond
	client.Logger = nil

	return &HTTPGateway{
		name:    cfg.Name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.timeout(),
		client:  client,
		log:     logger.WithFields(logrus.Fields{"component": "clearinghouse_gateway", "provider": cfg.Name}),
	}
}

func (g *HTTPGateway) Name() string { return g.name }

func (g *HTTPGateway) Timeout() time.Duration { return g.timeout }

func (g *HTTPGateway) Submit(ctx context.Context, payload interfaces.ClaimPayload) (interfaces.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.SubmissionResult{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/claims", bytes.NewReader(body))
	if err != nil {
		return interfaces.SubmissionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("X-API-Key", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.WithError(err).Warn("submission request failed")
		return interfaces.SubmissionResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return interfaces.SubmissionResult{}, err
	}

	var reply submitResponse
	if len(raw) > 0 {
		// Tolerate non-JSON error bodies; the status code still classifies.
		_ = json.Unmarshal(raw, &reply)
	}

	result := interfaces.SubmissionResult{
		ConfirmationNumber: reply.ConfirmationNumber,
		TrackingNumber:     reply.TrackingNumber,
		ErrorCode:          reply.ErrorCode,
		ErrorMessage:       reply.ErrorMessage,
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		result.Success = true
	case resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500:
		result.Retryable = true
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("provider returned HTTP %d", resp.StatusCode)
		}
	default:
		if result.ErrorMessage == "" {
			result.ErrorMessage = fmt.Sprintf("provider rejected claim with HTTP %d", resp.StatusCode)
		}
	}

	g.log.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"success":     result.Success,
		"retryable":   result.Retryable,
	}).Info("submission response received")
	return result, nil
}

// MockGateway stands in for a clearinghouse when CLEARINGHOUSE_MOCK is set.
// Every submission is accepted with a deterministic confirmation number.

type MockGateway struct {
	name    string
	timeout time.Duration
}

var _ interfaces.IProviderGateway = (*MockGateway)(nil)

func NewMockGateway(cfg ProviderConfig) *MockGateway {
	return &MockGateway{name: cfg.Name, timeout: cfg.timeout()}
}

func (g *MockGateway) Name() string { return g.name }

func (g *MockGateway) Timeout() time.Duration { return g.timeout }

func (g *MockGateway) Submit(_ context.Context, payload interfaces.ClaimPayload) (interfaces.SubmissionResult, error) {
	return interfaces.SubmissionResult{
		Success:            true,
		ConfirmationNumber: fmt.Sprintf("MOCK-%s-%s", strings.ToUpper(g.name), payload.SubmissionID),
		TrackingNumber:     fmt.Sprintf("TRK-%s", payload.SubmissionID),
	}, nil
}

// IsMockEnabled reports whether gateway mock mode is switched on via env.
func IsMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CLEARINGHOUSE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
