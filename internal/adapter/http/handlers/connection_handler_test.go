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

func TestConnectionHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ConnectionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/connections", h.Submit)
		return r
	}

	const body = `{"user_name":"Asha","user_mobile":"9876543210","building_id":"BLD-1","wing":"A","floor":2,"unit_number":"201"}`

	t.Run("missing actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/connections", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("duplicate pending maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitConnectionInput{
			UserID:     "u-1",
			UserName:   "Asha",
			UserMobile: "9876543210",
			BuildingID: "BLD-1",
			Wing:       "A",
			Floor:      2,
			UnitNumber: "201",
		}).Return(entities.ConnectionRequest{}, usecase.ErrDuplicatePendingRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/connections", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(entities.ConnectionRequest{ID: "REQ-1", Status: entities.ConnectionStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/connections", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestConnectionHandler_Process(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *ConnectionHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/connections/:request_id/process", h.Process)
		return r
	}

	t.Run("already processed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		uc.EXPECT().Process(gomock.Any(), "u-1", "REQ-1", usecase.ConnectionActionApprove).
			Return(entities.ConnectionRequest{}, usecase.ErrRequestAlreadyProcessed)

		req := httptest.NewRequest(http.MethodPost, "/v1/connections/REQ-1/process", bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("occupied unit maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		uc.EXPECT().Process(gomock.Any(), "u-1", "REQ-1", usecase.ConnectionActionApprove).
			Return(entities.ConnectionRequest{}, usecase.ErrUnitOccupied)

		req := httptest.NewRequest(http.MethodPost, "/v1/connections/REQ-1/process", bytes.NewBufferString(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reject succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConnectionDesk(ctrl)
		r := newRouter(NewConnectionHandler(uc))

		uc.EXPECT().Process(gomock.Any(), "u-1", "REQ-1", usecase.ConnectionActionReject).
			Return(entities.ConnectionRequest{ID: "REQ-1", Status: entities.ConnectionStatusRejected}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/connections/REQ-1/process", bytes.NewBufferString(`{"action":"reject"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConnectionHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConnectionDesk(ctrl)
	h := NewConnectionHandler(uc)

	r := gin.New()
	r.GET("/v1/connections", h.ListPending)

	uc.EXPECT().ListPending(gomock.Any(), "u-1", "BLD-1").
		Return([]entities.ConnectionRequest{{ID: "REQ-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/connections?building_id=BLD-1", nil)
	req.Header.Set("X-User-Id", "u-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
