package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"societyhub/internal/adapter/http/handlers/mocks"
	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuthHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/auth/register", h.Register)
		return r
	}

	t.Run("missing password fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"Asha","mobile":"9876543210"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate account maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Register(gomock.Any(), "Asha", "9876543210", "s3cret!", "").
			Return(entities.User{}, usecase.ErrUserAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"Asha","mobile":"9876543210","password":"s3cret!"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Register(gomock.Any(), "Asha", "9876543210", "s3cret!", "resident").
			Return(entities.User{ID: "u-1", Name: "Asha", Mobile: "9876543210", UserType: "resident"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString(`{"name":"Asha","mobile":"9876543210","password":"s3cret!","user_type":"resident"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["user_id"] != "u-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *AuthHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/auth/login", h.Login)
		return r
	}

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Login(gomock.Any(), "9876543210", "wrong").
			Return(usecase.AuthResult{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"mobile":"9876543210","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success returns tokens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newRouter(NewAuthHandler(uc))

		uc.EXPECT().Login(gomock.Any(), "9876543210", "s3cret!").
			Return(usecase.AuthResult{
				User:        entities.User{ID: "u-1", Name: "Asha"},
				AccessToken: "access-token",
				IDToken:     "id-token",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"mobile":"9876543210","password":"s3cret!"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["access_token"] != "access-token" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAuthHandler_GetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/users/:user_id", h.GetUser)

		uc.EXPECT().GetUser(gomock.Any(), "missing").Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
