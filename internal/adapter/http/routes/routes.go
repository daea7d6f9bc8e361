package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "societyhub/docs" // swag-generated documentation
	"societyhub/internal/adapter/http/handlers"
	"societyhub/internal/adapter/persistence/repository"
	"societyhub/internal/infrastructure/database"
	"societyhub/internal/infrastructure/identity"
	"societyhub/internal/infrastructure/payments"
	"societyhub/internal/usecase"
	"societyhub/internal/usecase/interfaces"

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

	buildingRepo := repository.NewBuildingDynamoRepository(ddb)
	roleRepo := repository.NewRoleDynamoRepository(ddb)
	unitRepo := repository.NewUnitDynamoRepository(ddb)
	maintenanceRepo := repository.NewMaintenanceDynamoRepository(ddb)
	unitBillRepo := repository.NewUnitBillDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	connectionRepo := repository.NewConnectionDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	var identityProvider interfaces.IIdentityProvider
	cognito, err := identity.NewCognitoProvider(context.Background())
	if err != nil {
		log.Printf("Cognito identity provider not configured: %v", err)
	} else {
		identityProvider = cognito
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	roleResolver := usecase.NewRoleResolver(roleRepo)
	buildingRegistry := usecase.NewBuildingRegistry(buildingRepo, unitRepo, unitBillRepo, paymentRepo, roleResolver)
	maintenanceAllocator := usecase.NewMaintenanceAllocator(maintenanceRepo, unitBillRepo, buildingRepo, unitRepo, roleResolver)
	paymentLedger := usecase.NewPaymentLedger(paymentRepo, maintenanceRepo, unitBillRepo, roleResolver, paymentGateway)
	connectionDesk := usecase.NewConnectionDesk(connectionRepo, buildingRepo, roleRepo, buildingRegistry, roleResolver)
	authUseCase := usecase.NewAuthUseCase(userRepo, identityProvider)

	authHandler := handlers.NewAuthHandler(authUseCase)
	buildingHandler := handlers.NewBuildingHandler(buildingRegistry)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceAllocator)
	paymentHandler := handlers.NewPaymentHandler(paymentLedger)
	connectionHandler := handlers.NewConnectionHandler(connectionDesk)
	roleHandler := handlers.NewRoleHandler(roleResolver)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSocietyRoutes(v1, authHandler, buildingHandler, maintenanceHandler, paymentHandler, connectionHandler, roleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
