package handlers

import (
	"errors"
	"log"
	"net/http"

	request "societyhub/internal/adapter/http/dto/request"
	response "societyhub/internal/adapter/http/dto/response"
	"societyhub/internal/usecase"
	"societyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMaintenancePayload = pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_INPUT", "Invalid maintenance payload", http.StatusBadRequest)

// MaintenanceHandler handles building bills and their per-unit allocation.

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceAllocator
}

func NewMaintenanceHandler(uc usecase.IMaintenanceAllocator) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

func (h *MaintenanceHandler) CreateBuildingBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	scope := usecase.BillScope{AllWings: payload.AllWings, Wings: payload.Wings}
	m, err := h.usecase.CreateBuildingBill(c.Request.Context(), actor, payload.BuildingID, payload.DueDate, payload.Description, scope, request.ToBillLines(payload.BillLines))
	if err != nil {
		log.Printf("[maintenance][handler] create failed building_id=%s err=%v", payload.BuildingID, err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaintenanceBill(m))
}

func (h *MaintenanceHandler) GetBuildingBill(c *gin.Context) {
	m, err := h.usecase.GetBuildingBill(c.Request.Context(), c.Param("maintenance_id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceBill(m))
}

func (h *MaintenanceHandler) ListBuildingBills(c *gin.Context) {
	ms, err := h.usecase.ListBuildingBills(c.Request.Context(), c.Query("building_id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceBills(ms))
}

func (h *MaintenanceHandler) DeleteBuildingBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteBuildingBill(c.Request.Context(), actor, c.Param("maintenance_id")); err != nil {
		log.Printf("[maintenance][handler] delete failed maintenance_id=%s err=%v", c.Param("maintenance_id"), err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) AllocateUnitBills(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	// Body is optional; overwrite defaults to false.
	var payload request.AllocateUnitBillsRequest
	_ = c.ShouldBindJSON(&payload)

	bills, err := h.usecase.AllocateUnitBills(c.Request.Context(), actor, c.Param("maintenance_id"), payload.Overwrite)
	if err != nil {
		log.Printf("[maintenance][handler] allocation failed maintenance_id=%s err=%v", c.Param("maintenance_id"), err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUnitBills(bills))
}

func (h *MaintenanceHandler) GetUnitBill(c *gin.Context) {
	b, err := h.usecase.GetUnitBill(c.Request.Context(), c.Param("unit_maintenance_id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnitBill(b))
}

func (h *MaintenanceHandler) ListUnitBills(c *gin.Context) {
	bills, err := h.usecase.ListUnitBills(c.Request.Context(), c.Query("building_id"), c.Query("maintenance_id"), c.Query("user_id"))
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnitBills(bills))
}

func (h *MaintenanceHandler) UpdateUnitBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateUnitBillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateUnitBill(c.Request.Context(), actor, c.Param("unit_maintenance_id"), request.ToBillLines(payload.BillLines))
	if err != nil {
		log.Printf("[maintenance][handler] unit bill update failed unit_maintenance_id=%s err=%v", c.Param("unit_maintenance_id"), err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnitBill(b))
}

func (h *MaintenanceHandler) DeleteUnitBill(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteUnitBill(c.Request.Context(), actor, c.Param("unit_maintenance_id")); err != nil {
		log.Printf("[maintenance][handler] unit bill delete failed unit_maintenance_id=%s err=%v", c.Param("unit_maintenance_id"), err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMaintenanceError(err error) *pkg.AppError {
	var wingErr *usecase.WingValidationError
	switch {
	case errors.As(err, &wingErr):
		return pkg.NewDomainErrorSimple("INVALID_WING", wingErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDueDate), errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrNoBillLines), errors.Is(err, usecase.ErrInvalidMaintenanceID),
		errors.Is(err, usecase.ErrInvalidUnitBillID), errors.Is(err, usecase.ErrInvalidBuildingID),
		errors.Is(err, usecase.ErrInvalidRoleKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this building", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitBillNotFound):
		return pkg.NewDomainErrorSimple("UNIT_BILL_NOT_FOUND", "Unit maintenance bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBuildingNotFound):
		return pkg.NewDomainErrorSimple("BUILDING_NOT_FOUND", "Building not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillAlreadyAllocated):
		return pkg.NewDomainErrorSimple("ALREADY_ALLOCATED", "Unit bills already allocated for this maintenance bill", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnitBillPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill is already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
