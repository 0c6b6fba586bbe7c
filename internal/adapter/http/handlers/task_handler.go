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
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)
)

// TaskHandler exposes task creation, removal and status changes under a work
// order.

type TaskHandler struct {
	usecase usecase.ITaskUseCase
}

func NewTaskHandler(uc usecase.ITaskUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

func (h *TaskHandler) Add(c *gin.Context) {
	workOrderID := c.Param("id")

	var payload request.AddTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	item := usecase.WorkOrderItem{
		ServiceTypeID:  payload.ResolveServiceTypeID(),
		Description:    payload.Description,
		EstimatedHours: payload.EstimatedHours,
		Priority:       payload.Priority,
	}

	task, err := h.usecase.AddTask(c.Request.Context(), workOrderID, item)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(task))
}

func (h *TaskHandler) List(c *gin.Context) {
	workOrderID := c.Param("id")

	tasks, err := h.usecase.TasksOf(c.Request.Context(), workOrderID)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *TaskHandler) Remove(c *gin.Context) {
	taskID := c.Param("taskId")

	if err := h.usecase.RemoveTask(c.Request.Context(), taskID); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	taskID := c.Param("taskId")

	var payload request.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.SetTaskStatus(c.Request.Context(), taskID, payload.ResolveStatus())
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTaskStatusChange(change.Task, change.Warnings))
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidServiceTypeID),
		errors.Is(err, usecase.ErrInvalidTaskPriority),
		errors.Is(err, usecase.ErrInvalidTaskStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTypeNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TYPE_NOT_FOUND", "Service type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderClosedForTasks):
		return pkg.NewDomainErrorSimple("WORK_ORDER_CLOSED", "Work order no longer accepts task changes", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTaskTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Task status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
