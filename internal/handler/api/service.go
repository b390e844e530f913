package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewServiceHandler(catalogUseCase usecase.CatalogUseCase) *ServiceHandler {
	return &ServiceHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List services
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	views, err := h.catalogUseCase.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.ServiceResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromServiceView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service id",
		})
		return
	}

	view, err := h.catalogUseCase.GetService(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create a service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogUseCase.CreateService(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service data",
			})
		case errors.Is(err, usecase.ErrDuplicateServiceName):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service name already exists",
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

// @Summary Update a service
// @Tags services
// @Security BearerAuth
// @Accept json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service id",
		})
		return
	}

	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalogUseCase.UpdateService(c.Request.Context(), id, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid service data",
			})
		case errors.Is(err, usecase.ErrDuplicateServiceName):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service name already exists",
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

// @Summary Delete a service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service id",
		})
		return
	}

	if err := h.catalogUseCase.DeleteService(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		case errors.Is(err, usecase.ErrServiceInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Service has bookings and cannot be deleted",
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
