package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffHandler struct {
	staffUseCase usecase.StaffUseCase
}

func NewStaffHandler(staffUseCase usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{
		staffUseCase: staffUseCase,
	}
}

// @Summary List staff
// @Tags staff
// @Produce json
// @Success 200 {array} resdto.StaffResponse
// @Router /staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	views, err := h.staffUseCase.ListStaff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]resdto.StaffResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromStaffView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Create a staff member
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateStaffRequest true "Staff"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/staff [post]
func (h *StaffHandler) Create(c *gin.Context) {
	var req reqdto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.staffUseCase.CreateStaff(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid staff data",
			})
		case errors.Is(err, usecase.ErrDuplicateStaffEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": id.String(),
	})
}

// @Summary Delete a staff member
// @Tags staff
// @Security BearerAuth
// @Param id path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/staff/{id} [delete]
func (h *StaffHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid staff id",
		})
		return
	}

	if err := h.staffUseCase.DeleteStaff(c.Request.Context(), actorID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff not found",
			})
		case errors.Is(err, usecase.ErrSelfDeletion):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Cannot delete own account",
			})
		case errors.Is(err, usecase.ErrStaffHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Staff has bookings and cannot be deleted",
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
