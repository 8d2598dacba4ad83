package api

import (
	"log/slog"
	"net/http"

	reqdto "tableline/internal/handler/dto/request"
	"tableline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler receives the voice platform's asynchronous call lifecycle
// events. Only call_ended matters here: it carries the transcript that
// decides the reservation outcome.
type EventHandler struct {
	booking usecase.BookingCommands
	logger  *slog.Logger
}

func NewEventHandler(booking usecase.BookingCommands, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		booking: booking,
		logger:  logger,
	}
}

// CallEvent always acknowledges with 200 for recognized-but-irrelevant events
// so the platform does not re-deliver them.
func (h *EventHandler) CallEvent(c *gin.Context) {
	var event reqdto.CallEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid event payload"}})
		return
	}

	if event.Event != "call_ended" {
		c.Status(http.StatusOK)
		return
	}

	rawID, ok := event.Call.Metadata["reservation_id"]
	if !ok {
		// Calls not tied to a reservation (e.g. bare status checks) are fine.
		h.logger.Info("call ended without reservation metadata", "call_id", event.Call.CallID)
		c.Status(http.StatusOK)
		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Warn("call ended with malformed reservation id",
			"call_id", event.Call.CallID, "reservation_id", rawID)
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Malformed reservation id"}})
		return
	}

	if err := h.booking.EndOfCall(c.Request.Context(), id, event.Call.Transcript); err != nil {
		h.logger.Warn("end-of-call processing failed",
			"call_id", event.Call.CallID, "reservation_id", id, "error", err)
		// Unknown reservation is not retryable; acknowledge to stop redelivery.
		c.Status(http.StatusOK)
		return
	}

	c.Status(http.StatusOK)
}
