package routes

import (
	"mecanica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders   = "/work-orders"
	PathTasks        = "/tasks"
	PathServiceTypes = "/service-types"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	workOrderHandler *handlers.WorkOrderHandler,
	taskHandler *handlers.TaskHandler,
	authorizationHandler *handlers.AuthorizationHandler,
	serviceTypeHandler *handlers.ServiceTypeHandler,
) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.Register)
		workOrders.GET("/:id", workOrderHandler.GetByID)
		workOrders.GET("/:id/cost", workOrderHandler.GetCost)

		// Lifecycle transitions.
		workOrders.PATCH("/:id/start", workOrderHandler.Start)
		workOrders.PATCH("/:id/force-start", workOrderHandler.ForceStart)
		workOrders.PATCH("/:id/pause", workOrderHandler.Pause)
		workOrders.PATCH("/:id/resume", workOrderHandler.Resume)
		workOrders.PATCH("/:id/quality-control", workOrderHandler.EnterQualityControl)
		workOrders.PATCH("/:id/complete", workOrderHandler.Complete)
		workOrders.PATCH("/:id/close", workOrderHandler.Close)
		workOrders.PATCH("/:id/cancel", workOrderHandler.Cancel)

		workOrders.POST("/:id/tasks", taskHandler.Add)
		workOrders.GET("/:id/tasks", taskHandler.List)

		workOrders.POST("/:id/authorizations", authorizationHandler.Send)
		workOrders.GET("/:id/authorizations", authorizationHandler.List)
		workOrders.PATCH("/:id/authorizations/approve", authorizationHandler.Approve)
		workOrders.PATCH("/:id/authorizations/reject", authorizationHandler.Reject)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.PATCH("/:taskId/status", taskHandler.UpdateStatus)
		tasks.DELETE("/:taskId", taskHandler.Remove)
	}

	serviceTypes := rg.Group(PathServiceTypes)
	{
		serviceTypes.POST("", serviceTypeHandler.Create)
		serviceTypes.GET("/:id", serviceTypeHandler.GetByID)
	}
}
