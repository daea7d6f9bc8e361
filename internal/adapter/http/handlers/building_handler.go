package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "societyhub/internal/adapter/http/dto/request"
	response "societyhub/internal/adapter/http/dto/response"
	"societyhub/internal/usecase"
	"societyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBuildingPayload = pkg.NewDomainErrorSimple("INVALID_BUILDING_INPUT", "Invalid building payload", http.StatusBadRequest)

// BuildingHandler handles building, wing and unit-assignment requests.

type BuildingHandler struct {
	usecase usecase.IBuildingRegistry
}

func NewBuildingHandler(uc usecase.IBuildingRegistry) *BuildingHandler {
	return &BuildingHandler{usecase: uc}
}

func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateBuildingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildingPayload.HTTPStatus, errInvalidBuildingPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.CreateBuilding(c.Request.Context(), actor, payload.Name, request.ToWingInputs(payload.Wings))
	if err != nil {
		log.Printf("[building][handler] create failed owner_id=%s err=%v", actor, err)
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBuilding(b))
}

func (h *BuildingHandler) GetBuilding(c *gin.Context) {
	b, err := h.usecase.GetBuilding(c.Request.Context(), c.Param("building_id"))
	if err != nil {
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuilding(b))
}

func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bs, err := h.usecase.ListBuildingsByOwner(c.Request.Context(), actor)
	if err != nil {
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuildings(bs))
}

func (h *BuildingHandler) UpdateBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateBuildingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildingPayload.HTTPStatus, errInvalidBuildingPayload.ToHTTPError())
		return
	}

	patch := usecase.BuildingPatch{Name: payload.Name, Wings: request.ToWingInputs(payload.Wings)}
	b, err := h.usecase.UpdateBuilding(c.Request.Context(), actor, c.Param("building_id"), patch)
	if err != nil {
		log.Printf("[building][handler] update failed building_id=%s err=%v", c.Param("building_id"), err)
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuilding(b))
}

func (h *BuildingHandler) DeleteBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteBuilding(c.Request.Context(), actor, c.Param("building_id")); err != nil {
		log.Printf("[building][handler] delete failed building_id=%s err=%v", c.Param("building_id"), err)
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BuildingHandler) AssignUnit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AssignUnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildingPayload.HTTPStatus, errInvalidBuildingPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.AssignUnit(c.Request.Context(), actor, c.Param("building_id"), payload.Wing, payload.Floor, payload.UnitNumber, payload.UserID)
	if err != nil {
		log.Printf("[building][handler] assign unit failed building_id=%s err=%v", c.Param("building_id"), err)
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUnit(a))
}

func (h *BuildingHandler) CheckUnitAvailability(c *gin.Context) {
	floor, err := strconv.Atoi(c.Query("floor"))
	if err != nil {
		c.JSON(errInvalidBuildingPayload.HTTPStatus, errInvalidBuildingPayload.ToHTTPError())
		return
	}

	available, err := h.usecase.CheckUnitAvailability(c.Request.Context(), c.Param("building_id"), c.Query("wing"), floor, c.Query("unit_number"))
	if err != nil {
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UnitAvailabilityResponse{Available: available})
}

func (h *BuildingHandler) ListUnitsByBuilding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	units, err := h.usecase.ListUnitsByBuilding(c.Request.Context(), actor, c.Param("building_id"))
	if err != nil {
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnits(units))
}

func (h *BuildingHandler) ListMyUnits(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	units, err := h.usecase.ListUnitsByUser(c.Request.Context(), actor)
	if err != nil {
		appErr := mapBuildingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUnits(units))
}

func mapBuildingError(err error) *pkg.AppError {
	var wingErr *usecase.WingValidationError
	switch {
	case errors.As(err, &wingErr):
		return pkg.NewDomainErrorSimple("INVALID_WING", wingErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBuildingName), errors.Is(err, usecase.ErrNoWings),
		errors.Is(err, usecase.ErrInvalidBuildingID), errors.Is(err, usecase.ErrInvalidRoleKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this building", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBuildingNotFound):
		return pkg.NewDomainErrorSimple("BUILDING_NOT_FOUND", "Building not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitOccupied):
		return pkg.NewDomainErrorSimple("UNIT_OCCUPIED", "Unit already has an active assignment", http.StatusConflict)
	case errors.Is(err, usecase.ErrBuildingReferenced):
		return pkg.NewDomainErrorSimple("BUILDING_REFERENCED", "Building is referenced by bills or payments", http.StatusConflict)
	case errors.Is(err, usecase.ErrRoleAlreadyHeld):
		return pkg.NewDomainErrorSimple("ROLE_ALREADY_HELD", "User already holds a role on this building", http.StatusConflict)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
