package routes

import (
	"societyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth        = "/auth"
	PathUsers       = "/users"
	PathBuildings   = "/buildings"
	PathUnits       = "/units"
	PathMaintenance = "/maintenance"
	PathPayments    = "/payments"
	PathConnections = "/connections"
)

func addSocietyRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	buildingHandler *handlers.BuildingHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	paymentHandler *handlers.PaymentHandler,
	connectionHandler *handlers.ConnectionHandler,
	roleHandler *handlers.RoleHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id", authHandler.GetUser)
	}

	buildings := rg.Group(PathBuildings)
	{
		buildings.POST("", buildingHandler.CreateBuilding)
		buildings.GET("", buildingHandler.ListBuildings)
		buildings.GET("/:building_id", buildingHandler.GetBuilding)
		buildings.PUT("/:building_id", buildingHandler.UpdateBuilding)
		buildings.DELETE("/:building_id", buildingHandler.DeleteBuilding)

		buildings.GET("/:building_id/availability", buildingHandler.CheckUnitAvailability)
		buildings.GET("/:building_id/units", buildingHandler.ListUnitsByBuilding)
		buildings.POST("/:building_id/units", buildingHandler.AssignUnit)

		buildings.GET("/:building_id/members", roleHandler.ListMembers)
		buildings.DELETE("/:building_id/members/:user_id", roleHandler.RemoveMember)
		buildings.GET("/:building_id/roles/:user_id", roleHandler.GetRole)
		buildings.POST("/:building_id/roles", roleHandler.AssignRole)
	}

	units := rg.Group(PathUnits)
	{
		units.GET("", buildingHandler.ListMyUnits)
	}

	maintenance := rg.Group(PathMaintenance)
	{
		maintenance.POST("", maintenanceHandler.CreateBuildingBill)
		maintenance.GET("", maintenanceHandler.ListBuildingBills)
		maintenance.GET("/units", maintenanceHandler.ListUnitBills)
		maintenance.GET("/units/:unit_maintenance_id", maintenanceHandler.GetUnitBill)
		maintenance.PUT("/units/:unit_maintenance_id", maintenanceHandler.UpdateUnitBill)
		maintenance.DELETE("/units/:unit_maintenance_id", maintenanceHandler.DeleteUnitBill)
		maintenance.GET("/:maintenance_id", maintenanceHandler.GetBuildingBill)
		maintenance.DELETE("/:maintenance_id", maintenanceHandler.DeleteBuildingBill)
		maintenance.POST("/:maintenance_id/allocate", maintenanceHandler.AllocateUnitBills)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}

	connections := rg.Group(PathConnections)
	{
		connections.POST("", connectionHandler.Submit)
		connections.GET("", connectionHandler.ListPending)
		connections.GET("/buildings", connectionHandler.ListConnectedBuildings)
		connections.PATCH("/:request_id", connectionHandler.Process)
	}
}
