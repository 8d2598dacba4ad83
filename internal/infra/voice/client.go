// Package voice starts restaurant-facing phone sessions through the call
// platform's REST API.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tableline/internal/pkg/config"
	"tableline/internal/pkg/errs"
	"tableline/internal/usecase"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const maxResponseSizeBytes = 1 << 20

type Client struct {
	baseURL    string
	apiKey     string
	agentID    string
	fromNumber string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

func NewClient(cfg config.VoiceConfig, logger *slog.Logger) *Client {
	dialsPerMin := cfg.DialsPerMin
	if dialsPerMin <= 0 {
		dialsPerMin = 30
	}

	settings := gobreaker.Settings{
		Name:    "voice-platform",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		agentID:    cfg.AgentID,
		fromNumber: cfg.FromNumber,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(float64(dialsPerMin)/60.0), 1),
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:     logger,
	}
}

type createCallRequest struct {
	FromNumber    string            `json:"from_number"`
	ToNumber      string            `json:"to_number"`
	OverrideAgent string            `json:"override_agent_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	DynamicVars   map[string]string `json:"retell_llm_dynamic_variables,omitempty"`
}

type createCallResponse struct {
	CallID string `json:"call_id"`
	Status string `json:"call_status"`
}

// StartCall dials the restaurant and returns the platform's call id, which
// becomes the reservation's outbound session id. Dials are rate-limited; the
// limiter wait respects ctx cancellation.
func (c *Client) StartCall(ctx context.Context, call usecase.OutboundCall) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", errs.Mark(errs.Wrap(err, "dial rate limit"), errs.ErrCallInitiationFailed)
	}

	payload := createCallRequest{
		FromNumber:    c.fromNumber,
		ToNumber:      call.ToNumber,
		OverrideAgent: c.agentID,
		Metadata: map[string]string{
			"reservation_id": call.ReservationID.String(),
		},
		DynamicVars: call.Variables,
	}

	body, err := c.post(ctx, "/v2/create-phone-call", payload)
	if err != nil {
		return "", errs.Mark(err, errs.ErrCallInitiationFailed)
	}

	var parsed createCallResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errs.Mark(errs.Wrap(err, "decode create call response"), errs.ErrCallInitiationFailed)
	}
	if parsed.CallID == "" {
		return "", errs.Mark(errs.New("create call response missing call_id"), errs.ErrCallInitiationFailed)
	}

	c.logger.Info("outbound call started",
		"call_id", parsed.CallID,
		"reservation_id", call.ReservationID,
		"to_number", call.ToNumber,
	)
	return parsed.CallID, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "encode voice request")
	}

	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
		if err != nil {
			return nil, errs.Wrap(err, "build voice request")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errs.Wrap(err, "call voice api")
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
		if err != nil {
			return nil, errs.Wrap(err, "read voice response")
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, errs.Newf("voice api returned status %d: %s", resp.StatusCode, string(body))
		}
		return body, nil
	})
}
