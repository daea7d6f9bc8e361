package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"societyhub/internal/adapter/http/handlers/mocks"
	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRoleHandler_AssignRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *RoleHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/buildings/:building_id/roles", h.AssignRole)
		return r
	}

	t.Run("missing actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/roles", bytes.NewBufferString(`{"user_id":"u-2","role":"member"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid role maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		uc.EXPECT().AssignRole(gomock.Any(), "u-1", "u-2", "BLD-1", entities.Role("janitor")).
			Return(entities.RoleAssignment{}, usecase.ErrInvalidRole)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/roles", bytes.NewBufferString(`{"user_id":"u-2","role":"janitor"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-admin actor maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		uc.EXPECT().AssignRole(gomock.Any(), "u-1", "u-2", "BLD-1", entities.RoleMember).
			Return(entities.RoleAssignment{}, usecase.ErrNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/roles", bytes.NewBufferString(`{"user_id":"u-2","role":"member"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		uc.EXPECT().AssignRole(gomock.Any(), "u-1", "u-2", "BLD-1", entities.RoleAdmin).
			Return(entities.RoleAssignment{UserID: "u-2", BuildingID: "BLD-1", Role: entities.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/roles", bytes.NewBufferString(`{"user_id":"u-2","role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRoleHandler_RemoveMember(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *RoleHandler) *gin.Engine {
		r := gin.New()
		r.DELETE("/v1/buildings/:building_id/roles/:user_id", h.RemoveMember)
		return r
	}

	t.Run("last admin maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		uc.EXPECT().RemoveMember(gomock.Any(), "u-1", "u-1", "BLD-1").Return(usecase.ErrLastAdmin)

		req := httptest.NewRequest(http.MethodDelete, "/v1/buildings/BLD-1/roles/u-1", nil)
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRoleResolver(ctrl)
		r := newRouter(NewRoleHandler(uc))

		uc.EXPECT().RemoveMember(gomock.Any(), "u-1", "u-2", "BLD-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/buildings/BLD-1/roles/u-2", nil)
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestRoleHandler_GetRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRoleResolver(ctrl)
	h := NewRoleHandler(uc)

	r := gin.New()
	r.GET("/v1/buildings/:building_id/roles/:user_id", h.GetRole)

	uc.EXPECT().GetRole(gomock.Any(), "u-2", "BLD-1").Return(entities.RoleMember, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/buildings/BLD-1/roles/u-2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
