//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"

	"tableline/internal/handler/api"
	"tableline/internal/pkg/errs"
	"tableline/tests/common/httptest"
	usecasemock "tableline/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingCommands
	handler     *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockBooking, slog.New(slog.DiscardHandler))

	s.router.POST("/webhook/call-events", s.handler.CallEvent)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

const eventsURL = "/webhook/call-events"

func callEndedEvent(callID, transcript string, metadata map[string]string) map[string]any {
	call := map[string]any{
		"call_id":    callID,
		"transcript": transcript,
	}
	if metadata != nil {
		call["metadata"] = metadata
	}
	return map[string]any{"event": "call_ended", "call": call}
}

func (s *EventHandlerTestSuite) TestCallEnded() {
	s.Run("transcript is forwarded for classification", func() {
		id := uuid.New()
		transcript := "Host: You're all set for 7pm, confirmed."

		s.mockBooking.EXPECT().
			EndOfCall(gomock.Any(), id, transcript).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			callEndedEvent("call-outbound-1", transcript,
				map[string]string{"reservation_id": id.String()}))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("no reservation metadata: acknowledged without processing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			callEndedEvent("call-inbound-1", "Customer: just checking in.", nil))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed reservation id: rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			callEndedEvent("call-outbound-1", "short call",
				map[string]string{"reservation_id": "not-a-uuid"}))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown reservation: acknowledged to stop redelivery", func() {
		id := uuid.New()
		s.mockBooking.EXPECT().
			EndOfCall(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			callEndedEvent("call-outbound-1", "hello?",
				map[string]string{"reservation_id": id.String()}))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *EventHandlerTestSuite) TestOtherEvents() {
	s.Run("call_started is acknowledged and ignored", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			map[string]any{"event": "call_started", "call": map[string]any{"call_id": "call-outbound-1"}})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing event field: bad request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, eventsURL,
			map[string]any{"call": map[string]any{"call_id": "call-outbound-1"}})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
