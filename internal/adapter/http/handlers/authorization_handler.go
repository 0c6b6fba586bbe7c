package handlers

import (
	"errors"
	"net/http"

	request "mecanica_os/internal/adapter/http/dto/request"
	response "mecanica_os/internal/adapter/http/dto/response"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthorizationPayload = pkg.NewDomainErrorSimple("INVALID_AUTHORIZATION_INPUT", "Invalid authorization payload", http.StatusBadRequest)
)

// AuthorizationHandler exposes the client approval protocol of a work order:
// sending a request and recording the approve/reject response.

type AuthorizationHandler struct {
	usecase usecase.IAuthorizationUseCase
}

func NewAuthorizationHandler(uc usecase.IAuthorizationUseCase) *AuthorizationHandler {
	return &AuthorizationHandler{usecase: uc}
}

func (h *AuthorizationHandler) Send(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.SendAuthorizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthorizationPayload.HTTPStatus, errInvalidAuthorizationPayload.ToHTTPError())
		return
	}

	cmd := usecase.AuthorizationSendCommand{
		Reason:                  payload.ResolveReason(),
		Details:                 payload.Details,
		EstimatedAdditionalCost: payload.EstimatedAdditionalCost,
		SentBy:                  payload.SentBy,
	}

	req, warnings, err := h.usecase.Send(c.Request.Context(), workOrderID, cmd)
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAuthorizationSend(req, warnings))
}

func (h *AuthorizationHandler) Approve(c *gin.Context) {
	h.respond(c, entities.AuthorizationStatusApproved)
}

func (h *AuthorizationHandler) Reject(c *gin.Context) {
	h.respond(c, entities.AuthorizationStatusRejected)
}

func (h *AuthorizationHandler) List(c *gin.Context) {
	workOrderID := c.Param("id")

	list, err := h.usecase.ListByWorkOrderID(c.Request.Context(), workOrderID)
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorizations(list))
}

func (h *AuthorizationHandler) respond(c *gin.Context, outcome entities.AuthorizationStatus) {
	workOrderID := c.Param("id")

	// The body is optional: approve/reject carry the outcome in the route.
	var payload request.RespondAuthorizationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidAuthorizationPayload.HTTPStatus, errInvalidAuthorizationPayload.ToHTTPError())
			return
		}
	}

	result, err := h.usecase.Respond(c.Request.Context(), workOrderID, outcome, payload.Comments)
	if err != nil {
		appErr := mapAuthorizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthorizationRespond(result.Request, result.WorkOrder, result.Advanced, result.Warnings))
}

func mapAuthorizationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidAuthorizationReason),
		errors.Is(err, usecase.ErrInvalidAuthorizationOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderTerminal):
		return pkg.NewDomainErrorSimple("WORK_ORDER_TERMINAL", "Work order is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalWorkOrderTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAuthorizationAlreadyPending):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_ALREADY_PENDING", "An authorization request is already pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingAuthorization):
		return pkg.NewDomainErrorSimple("NO_PENDING_AUTHORIZATION", "No pending authorization request", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuthorizationAlreadyResolved):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_ALREADY_RESOLVED", "Authorization request already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
