//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertSpokenResponse decodes the voice-platform envelope and checks the
// spoken text contains want.
func AssertSpokenResponse(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	var body struct {
		Response string `json:"response"`
	}
	AssertSuccessResponse(t, w, 200, &body)
	assert.Contains(t, body.Response, want,
		"Spoken response doesn't contain expected text")
}
