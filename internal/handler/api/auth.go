package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Staff login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, member, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Staff:       resdto.FromStaffView(member),
	})
}

// @Summary Get current staff
// @Description Get the authenticated staff member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	member, err := h.authUseCase.GetCurrentStaff(c.Request.Context(), staffID)
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

	c.JSON(http.StatusOK, resdto.FromStaffView(member))
}
