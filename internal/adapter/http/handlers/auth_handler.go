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

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)

// AuthHandler handles registration, login and profile lookups.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Name, payload.Mobile, payload.Password, payload.UserType)
	if err != nil {
		log.Printf("[auth][handler] register failed mobile=%s err=%v", payload.Mobile, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.Mobile, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] login failed mobile=%s err=%v", payload.Mobile, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuthResult(result))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMobile), errors.Is(err, usecase.ErrMissingSignupField):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid mobile or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainErrorSimple("USER_ALREADY_EXISTS", "User already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("DEPENDENCY_ERROR", "An upstream dependency failed", err, http.StatusBadGateway)
	}
}
