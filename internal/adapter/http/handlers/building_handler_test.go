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

func TestBuildingHandler_CreateBuilding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BuildingHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/buildings", h.CreateBuilding)
		return r
	}

	t.Run("missing actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewBufferString(`{"name":"Sunrise","wings":{"A":{"total_floors":10,"units_per_floor":4}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing wings fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewBufferString(`{"name":"Sunrise"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wing validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().CreateBuilding(gomock.Any(), "u-1", "Sunrise", gomock.Any()).
			Return(entities.Building{}, &usecase.WingValidationError{Wing: "Z", Reason: "total_floors must be between 1 and 100"})

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewBufferString(`{"name":"Sunrise","wings":{"Z":{"total_floors":500,"units_per_floor":4}}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().CreateBuilding(gomock.Any(), "u-1", "Sunrise", map[string]usecase.WingInput{
			"A": {TotalFloors: 10, UnitsPerFloor: 4},
		}).Return(entities.Building{
			ID:          "BLD-1",
			Name:        "Sunrise",
			OwnerID:     "u-1",
			Wings:       []string{"A"},
			WingDetails: map[string]entities.WingDetail{"A": {TotalFloors: 10, UnitsPerFloor: 4, TotalUnits: 40}},
			TotalWings:  1,
			TotalUnits:  40,
			Status:      entities.BuildingStatusActive,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewBufferString(`{"name":"Sunrise","wings":{"A":{"total_floors":10,"units_per_floor":4}}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["building_id"] != "BLD-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBuildingHandler_DeleteBuilding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BuildingHandler) *gin.Engine {
		r := gin.New()
		r.DELETE("/v1/buildings/:building_id", h.DeleteBuilding)
		return r
	}

	t.Run("referenced building maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().DeleteBuilding(gomock.Any(), "u-1", "BLD-1").Return(usecase.ErrBuildingReferenced)

		req := httptest.NewRequest(http.MethodDelete, "/v1/buildings/BLD-1", nil)
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
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().DeleteBuilding(gomock.Any(), "u-1", "BLD-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/buildings/BLD-1", nil)
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestBuildingHandler_AssignUnit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BuildingHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/buildings/:building_id/units", h.AssignUnit)
		return r
	}

	t.Run("occupied unit maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().AssignUnit(gomock.Any(), "u-1", "BLD-1", "A", 2, "201", "u-2").
			Return(entities.UnitAssignment{}, usecase.ErrUnitOccupied)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/units", bytes.NewBufferString(`{"user_id":"u-2","wing":"A","floor":2,"unit_number":"201"}`))
		req.Header.Set("Content-Type", "application/json")
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
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().AssignUnit(gomock.Any(), "u-1", "BLD-1", "A", 2, "201", "u-2").
			Return(entities.UnitAssignment{
				OccupancyID: "UNIT#BLD-1#A#2#201",
				BuildingID:  "BLD-1",
				Wing:        "A",
				Floor:       2,
				UnitNumber:  "201",
				UserID:      "u-2",
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/buildings/BLD-1/units", bytes.NewBufferString(`{"user_id":"u-2","wing":"A","floor":2,"unit_number":"201"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBuildingHandler_CheckUnitAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BuildingHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/buildings/:building_id/units/availability", h.CheckUnitAvailability)
		return r
	}

	t.Run("non-numeric floor maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/buildings/BLD-1/units/availability?wing=A&floor=two&unit_number=201", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		r := newRouter(NewBuildingHandler(uc))

		uc.EXPECT().CheckUnitAvailability(gomock.Any(), "BLD-1", "A", 2, "201").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/buildings/BLD-1/units/availability?wing=A&floor=2&unit_number=201", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["available"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestBuildingHandler_GetBuilding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuildingRegistry(ctrl)
		h := NewBuildingHandler(uc)

		r := gin.New()
		r.GET("/v1/buildings/:building_id", h.GetBuilding)

		uc.EXPECT().GetBuilding(gomock.Any(), "missing").Return(entities.Building{}, usecase.ErrBuildingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/buildings/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
