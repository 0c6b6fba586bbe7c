package handlers

import (
	"errors"
	"net/http"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceTypePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE_INPUT", "Invalid service type payload", http.StatusBadRequest)
)

// ServiceTypeHandler maintains the priced service catalog.

type ServiceTypeHandler struct {
	usecase usecase.IServiceTypeUseCase
}

func NewServiceTypeHandler(uc usecase.IServiceTypeUseCase) *ServiceTypeHandler {
	return &ServiceTypeHandler{usecase: uc}
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var payload request.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceTypePayload.HTTPStatus, errInvalidServiceTypePayload.ToHTTPError())
		return
	}

	st, err := h.usecase.Create(c.Request.Context(), payload.ResolveName(), payload.Description, payload.Price)
	if err != nil {
		appErr := mapServiceTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceType(st))
}

func (h *ServiceTypeHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	st, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceTypeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceType(st))
}

func mapServiceTypeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceTypeName),
		errors.Is(err, usecase.ErrInvalidServiceTypePrice),
		errors.Is(err, usecase.ErrInvalidServiceTypeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
