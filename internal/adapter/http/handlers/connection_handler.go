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

var errInvalidConnectionPayload = pkg.NewDomainErrorSimple("INVALID_CONNECTION_INPUT", "Invalid connection payload", http.StatusBadRequest)

// ConnectionHandler handles resident connection requests.

type ConnectionHandler struct {
	usecase usecase.IConnectionDesk
}

func NewConnectionHandler(uc usecase.IConnectionDesk) *ConnectionHandler {
	return &ConnectionHandler{usecase: uc}
}

func (h *ConnectionHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.SubmitConnectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConnectionPayload.HTTPStatus, errInvalidConnectionPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitConnectionInput{
		UserID:     actor,
		UserName:   payload.UserName,
		UserMobile: payload.UserMobile,
		BuildingID: payload.BuildingID,
		Wing:       payload.Wing,
		Floor:      payload.Floor,
		UnitNumber: payload.UnitNumber,
	})
	if err != nil {
		log.Printf("[connection][handler] submit failed user_id=%s err=%v", actor, err)
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConnection(r))
}

func (h *ConnectionHandler) Process(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ProcessConnectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConnectionPayload.HTTPStatus, errInvalidConnectionPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Process(c.Request.Context(), actor, c.Param("request_id"), usecase.ConnectionAction(payload.Action))
	if err != nil {
		log.Printf("[connection][handler] process failed request_id=%s err=%v", c.Param("request_id"), err)
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConnection(r))
}

func (h *ConnectionHandler) ListPending(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	rs, err := h.usecase.ListPending(c.Request.Context(), actor, c.Query("building_id"))
	if err != nil {
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConnections(rs))
}

func (h *ConnectionHandler) ListConnectedBuildings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bs, err := h.usecase.ListConnectedBuildings(c.Request.Context(), actor)
	if err != nil {
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBuildings(bs))
}

func mapConnectionError(err error) *pkg.AppError {
	var wingErr *usecase.WingValidationError
	switch {
	case errors.As(err, &wingErr):
		return pkg.NewDomainErrorSimple("INVALID_WING", wingErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequestID), errors.Is(err, usecase.ErrInvalidRequestAction),
		errors.Is(err, usecase.ErrInvalidBuildingID), errors.Is(err, usecase.ErrInvalidRoleKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this building", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Connection request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBuildingNotFound):
		return pkg.NewDomainErrorSimple("BUILDING_NOT_FOUND", "Building not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyProcessed):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_PROCESSED", "Connection request already processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicatePendingRequest):
		return pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "A pending request for this unit already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnitOccupied):
		return pkg.NewDomainErrorSimple("UNIT_OCCUPIED", "Unit already has an active assignment", http.StatusConflict)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
