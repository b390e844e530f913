package api

import (
	"errors"
	"net/http"
	"time"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availability usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Get available slots
// @Description List bookable start times for a staff member on a given day
// @Tags availability
// @Produce json
// @Param staff_id query string true "Staff ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param service_id query string false "Service ID; unknown services fall back to defaults"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	staffID, err := uuid.Parse(c.Query("staff_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff_id",
		})
		return
	}

	dateStr := c.Query("date")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	var serviceID *uuid.UUID
	if raw := c.Query("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service_id",
			})
			return
		}
		serviceID = &id
	}

	slots, err := h.availability.DaySlots(c.Request.Context(), staffID, day, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(staffID, dateStr, slots))
}
