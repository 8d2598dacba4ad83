//go:build unit

package voice_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableline/internal/infra/voice"
	"tableline/internal/pkg/config"
	"tableline/internal/pkg/errs"
	"tableline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *voice.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.VoiceConfig{
		APIKey:      "test-voice-key",
		BaseURL:     server.URL,
		AgentID:     "agent-restaurant-caller",
		FromNumber:  "+15550100000",
		Timeout:     time.Second,
		DialsPerMin: 6000, // effectively unlimited for tests
	}
	return voice.NewClient(cfg, slog.New(slog.DiscardHandler))
}

func TestStartCall(t *testing.T) {
	reservationID := uuid.New()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/create-phone-call", r.URL.Path)
		assert.Equal(t, "Bearer test-voice-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			FromNumber  string            `json:"from_number"`
			ToNumber    string            `json:"to_number"`
			AgentID     string            `json:"override_agent_id"`
			Metadata    map[string]string `json:"metadata"`
			DynamicVars map[string]string `json:"retell_llm_dynamic_variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "+15550100000", payload.FromNumber)
		assert.Equal(t, "+15107735000", payload.ToNumber)
		assert.Equal(t, "agent-restaurant-caller", payload.AgentID)
		assert.Equal(t, reservationID.String(), payload.Metadata["reservation_id"])
		assert.Equal(t, "Jane Doe", payload.DynamicVars["customer_name"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"call_id": "call-outbound-1", "call_status": "registered"}`))
	}))

	callID, err := client.StartCall(context.Background(), usecase.OutboundCall{
		ToNumber:      "+15107735000",
		ReservationID: reservationID,
		Variables: map[string]string{
			"customer_name":   "Jane Doe",
			"restaurant_name": "Chez Panisse",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "call-outbound-1", callID)
}

func TestStartCallMissingCallID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"call_status": "error"}`))
	}))

	_, err := client.StartCall(context.Background(), usecase.OutboundCall{
		ToNumber:      "+15107735000",
		ReservationID: uuid.New(),
	})
	assert.ErrorIs(t, err, errs.ErrCallInitiationFailed)
}

func TestStartCallAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid api key"}`))
	}))

	_, err := client.StartCall(context.Background(), usecase.OutboundCall{
		ToNumber:      "+15107735000",
		ReservationID: uuid.New(),
	})
	assert.ErrorIs(t, err, errs.ErrCallInitiationFailed)
}

func TestStartCallRespectsContextCancellation(t *testing.T) {
	cfg := config.VoiceConfig{
		APIKey:      "test-voice-key",
		BaseURL:     "http://localhost:1", // never reached
		AgentID:     "agent-restaurant-caller",
		FromNumber:  "+15550100000",
		Timeout:     time.Second,
		DialsPerMin: 1, // one dial per minute, second Wait blocks
	}
	client := voice.NewClient(cfg, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The burst token may let the first dial through to the (dead) endpoint;
	// either way a cancelled context must surface as a dial failure.
	_, err := client.StartCall(ctx, usecase.OutboundCall{
		ToNumber:      "+15107735000",
		ReservationID: uuid.New(),
	})
	assert.ErrorIs(t, err, errs.ErrCallInitiationFailed)
}
