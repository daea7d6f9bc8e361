package handlers

import (
	"errors"
	"log"
	"net/http"

	request "societyhub/internal/adapter/http/dto/request"
	response "societyhub/internal/adapter/http/dto/response"
	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase"
	"societyhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRolePayload = pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)

// RoleHandler handles membership and role management on a building.

type RoleHandler struct {
	usecase usecase.IRoleResolver
}

func NewRoleHandler(uc usecase.IRoleResolver) *RoleHandler {
	return &RoleHandler{usecase: uc}
}

func (h *RoleHandler) AssignRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.AssignRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}

	a, err := h.usecase.AssignRole(c.Request.Context(), actor, payload.UserID, c.Param("building_id"), entities.Role(payload.Role))
	if err != nil {
		log.Printf("[role][handler] assign failed building_id=%s user_id=%s err=%v", c.Param("building_id"), payload.UserID, err)
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoleAssignment(a))
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	role, err := h.usecase.GetRole(c.Request.Context(), c.Param("user_id"), c.Param("building_id"))
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"building_id": c.Param("building_id"), "user_id": c.Param("user_id"), "role": string(role)})
}

func (h *RoleHandler) ListMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	members, err := h.usecase.ListMembers(c.Request.Context(), actor, c.Param("building_id"))
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRoleAssignments(members))
}

func (h *RoleHandler) RemoveMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.usecase.RemoveMember(c.Request.Context(), actor, c.Param("user_id"), c.Param("building_id")); err != nil {
		log.Printf("[role][handler] remove failed building_id=%s user_id=%s err=%v", c.Param("building_id"), c.Param("user_id"), err)
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRoleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRole), errors.Is(err, usecase.ErrInvalidRoleKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized for this building", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLastAdmin):
		return pkg.NewDomainErrorSimple("LAST_ADMIN", "Cannot remove the last admin", http.StatusConflict)
	case errors.Is(err, usecase.ErrRoleAlreadyHeld):
		return pkg.NewDomainErrorSimple("ROLE_ALREADY_HELD", "User already holds a role on this building", http.StatusConflict)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
