package routes

import (
	"log"
	_ "mecanica_os/docs" // This will be auto-generated
	"mecanica_os/internal/adapter/http/handlers"
	repository2 "mecanica_os/internal/adapter/persistence/repository"
	"mecanica_os/internal/infrastructure/billing"
	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/infrastructure/notification"
	"mecanica_os/internal/infrastructure/workshop"
	"mecanica_os/internal/usecase"
	"mecanica_os/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)
	authorizationRepo := repository2.NewAuthorizationDynamoRepository(ddb)
	overrideRepo := repository2.NewStatusOverrideDynamoRepository(ddb)
	serviceTypeRepo := repository2.NewServiceTypeDynamoRepository(ddb)

	overrideUseCase := usecase.NewStatusOverrideUseCase(overrideRepo)

	var backend interfaces.IWorkshopBackend
	backendClient, err := workshop.NewBackendClient(os.Getenv("WORKSHOP_BACKEND_URL"))
	if err != nil {
		log.Printf("Workshop backend not configured: %v", err)
	} else {
		backend = backendClient
	}

	var invoicing interfaces.IInvoicingGateway
	invoicingClient, err := billing.NewInvoicingClient(os.Getenv("BILLING_SERVICE_URL"))
	if err != nil {
		log.Printf("Billing service not configured: %v", err)
	} else {
		invoicing = invoicingClient
	}

	var notifier interfaces.IClientNotifier
	webhookNotifier, err := notification.NewWebhookNotifier(os.Getenv("NOTIFICATION_WEBHOOK_URL"))
	if err != nil {
		log.Printf("Client notification webhook not configured: %v", err)
	} else {
		notifier = webhookNotifier
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, taskRepo, serviceTypeRepo, overrideUseCase, backend, invoicing)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, workOrderRepo, serviceTypeRepo, workOrderUseCase)
	authorizationUseCase := usecase.NewAuthorizationUseCase(authorizationRepo, workOrderUseCase, notifier)
	costUseCase := usecase.NewCostUseCase(workOrderRepo, taskRepo, serviceTypeRepo)
	serviceTypeUseCase := usecase.NewServiceTypeUseCase(serviceTypeRepo)

	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, taskUseCase, costUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	authorizationHandler := handlers.NewAuthorizationHandler(authorizationUseCase)
	serviceTypeHandler := handlers.NewServiceTypeHandler(serviceTypeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, workOrderHandler, taskHandler, authorizationHandler, serviceTypeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
