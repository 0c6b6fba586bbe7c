package handlers

import (
	"context"
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
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler exposes the work-order lifecycle: registration, the merged
// read model and every guarded transition.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
	tasks   usecase.ITaskUseCase
	costs   usecase.ICostUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, tasks usecase.ITaskUseCase, costs usecase.ICostUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc, tasks: tasks, costs: costs}
}

// Register opens a new work order, optionally with its initial tasks (one per
// approved quotation item, each created pending with the default priority).
func (h *WorkOrderHandler) Register(c *gin.Context) {
	var payload request.RegisterWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	cmd := usecase.RegisterWorkOrderCommand{
		ClientID:                payload.ResolveClientID(),
		VehicleID:               payload.ResolveVehicleID(),
		AdvisorID:               payload.AdvisorID,
		MechanicID:              payload.MechanicID,
		ReceptionNotes:          payload.ReceptionNotes,
		OdometerIn:              payload.OdometerIn,
		EstimatedCompletionDate: payload.EstimatedCompletionDate,
		EstimatedHours:          payload.EstimatedHours,
	}
	for _, item := range payload.Items {
		cmd.Items = append(cmd.Items, usecase.WorkOrderItem{
			ServiceTypeID:  item.ServiceTypeID,
			Description:    item.Description,
			EstimatedHours: item.EstimatedHours,
			Priority:       item.Priority,
		})
	}

	wo, tasks, err := h.usecase.Register(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrderDetail(wo, tasks, 0))
}

// GetByID serves the merged read model: override-resolved status, tasks in
// creation order and the derived total cost.
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	wo, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tasks, err := h.tasks.TasksOf(c.Request.Context(), wo.ID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	totalCost, err := h.costs.TotalCost(c.Request.Context(), wo.ID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderDetail(wo, tasks, totalCost))
}

func (h *WorkOrderHandler) GetCost(c *gin.Context) {
	id := c.Param("id")

	totalCost, err := h.costs.TotalCost(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WorkOrderCostResponse{WorkOrderID: id, TotalCost: totalCost})
}

func (h *WorkOrderHandler) Start(c *gin.Context) {
	h.patchStatus(c, h.usecase.Start)
}

func (h *WorkOrderHandler) ForceStart(c *gin.Context) {
	h.patchStatus(c, h.usecase.ForceStart)
}

func (h *WorkOrderHandler) Pause(c *gin.Context) {
	h.patchStatus(c, h.usecase.Pause)
}

func (h *WorkOrderHandler) Resume(c *gin.Context) {
	h.patchStatus(c, h.usecase.Resume)
}

func (h *WorkOrderHandler) EnterQualityControl(c *gin.Context) {
	h.patchStatus(c, h.usecase.EnterQualityControl)
}

func (h *WorkOrderHandler) Complete(c *gin.Context) {
	h.patchStatus(c, h.usecase.Complete)
}

func (h *WorkOrderHandler) Close(c *gin.Context) {
	h.patchStatus(c, h.usecase.Close)
}

func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	h.patchStatus(c, h.usecase.Cancel)
}

func (h *WorkOrderHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.WorkOrder, []pkg.Warning, error),
) {
	id := c.Param("id")

	wo, warnings, err := updater(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderMutation(wo, warnings))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidServiceTypeID),
		errors.Is(err, usecase.ErrInvalidTaskPriority):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderTerminal):
		return pkg.NewDomainErrorSimple("WORK_ORDER_TERMINAL", "Work order is in a terminal status", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalWorkOrderTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPendingTasks):
		return pkg.NewDomainErrorSimple("PENDING_TASKS", "Work order has tasks not yet done", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
