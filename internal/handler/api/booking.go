package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Send verification code
// @Description Issue a one-time code to the given contact
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SendCodeRequest true "Send code request"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /bookings/send-code [post]
func (h *BookingHandler) SendCode(c *gin.Context) {
	var req reqdto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.bookingUseCase.SendCode(c.Request.Context(), req.Contact, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid contact",
			})
		case errors.Is(err, usecase.ErrTooManyCodeRequests):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many code requests, try again later",
			})
		case errors.Is(err, usecase.ErrCodeDeliveryFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to deliver verification code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Verification code sent",
	})
}

// @Summary Confirm a booking
// @Description Verify the one-time code and commit the slot atomically
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmBookingRequest true "Confirm booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	booked, err := h.bookingUseCase.Confirm(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCodeInvalidOrExpired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Verification code invalid or expired",
			})
		case errors.Is(err, usecase.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested slot is no longer available",
			})
		case errors.Is(err, usecase.ErrClosedDay):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Requested day is closed",
			})
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff not found",
			})
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(booked))
}

// @Summary Get a booking
// @Description Staff view of a single booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	booked, err := h.bookingUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(booked))
}

// @Summary List bookings for a day
// @Description Staff view of all bookings on a given day
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListByDay(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.bookingUseCase.ListByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromBookingView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Cancel a booking
// @Description Mark a booking cancelled, freeing its slot
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking id",
		})
		return
	}

	if err := h.bookingUseCase.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
