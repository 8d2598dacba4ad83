package api

import (
	"net/http"

	resdto "tableline/internal/handler/dto/response"
	"tableline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DebugHandler exposes raw reservation records. Mounted only in debug mode.
type DebugHandler struct {
	coordinator usecase.Coordinator
}

func NewDebugHandler(coordinator usecase.Coordinator) *DebugHandler {
	return &DebugHandler{coordinator: coordinator}
}

func (h *DebugHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid reservation id"}})
		return
	}

	res, err := h.coordinator.Reservation(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Reservation not found"}})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}
