package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_os/internal/adapter/http/handlers/mocks"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase"
	"mecanica_os/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTaskHandler_Add(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTaskHandler(mocks.NewMockITaskUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/work-orders/:id/tasks", h.Add)

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/os-1/tasks", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().AddTask(gomock.Any(), "os-1", usecase.WorkOrderItem{ServiceTypeID: "st-1", Priority: 4}).Return(
			entities.Task{ID: "t-1", WorkOrderID: "os-1", ServiceTypeID: "st-1", Priority: 4, Status: entities.TaskStatusPending},
			nil,
		)

		r := gin.New()
		r.POST("/v1/work-orders/:id/tasks", h.Add)

		body := `{"service_type_id":"st-1","priority":4}`
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/os-1/tasks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			ID           string `json:"id"`
			Status       string `json:"status"`
			PriorityBand string `json:"priority_band"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.ID != "t-1" || resp.Status != "pendente" || resp.PriorityBand != "critica" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("closed work order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().AddTask(gomock.Any(), "os-1", gomock.Any()).Return(entities.Task{}, usecase.ErrWorkOrderClosedForTasks)

		r := gin.New()
		r.POST("/v1/work-orders/:id/tasks", h.Add)

		body := `{"service_type_id":"st-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders/os-1/tasks", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestTaskHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITaskUseCase(ctrl)
	h := NewTaskHandler(uc)

	uc.EXPECT().TasksOf(gomock.Any(), "os-1").Return([]entities.Task{
		{ID: "t-1", Priority: 1},
		{ID: "t-2", Priority: 3},
	}, nil)

	r := gin.New()
	r.GET("/v1/work-orders/:id/tasks", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/work-orders/os-1/tasks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "t-1" || resp[1].ID != "t-2" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestTaskHandler_Remove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().RemoveTask(gomock.Any(), "t-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/tasks/:taskId", h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/v1/tasks/t-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("unknown task maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().RemoveTask(gomock.Any(), "t-x").Return(usecase.ErrTaskNotFound)

		r := gin.New()
		r.DELETE("/v1/tasks/:taskId", h.Remove)

		req := httptest.NewRequest(http.MethodDelete, "/v1/tasks/t-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTaskHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start with cascade warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().SetTaskStatus(gomock.Any(), "t-1", entities.TaskStatusInProgress).Return(usecase.TaskStatusChange{
			Task:     entities.Task{ID: "t-1", Status: entities.TaskStatusInProgress, Priority: 3},
			Warnings: []pkg.Warning{pkg.NewWarning(usecase.WarnAutoStartFailed, "work order could not be auto-started")},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/tasks/:taskId/status", h.UpdateStatus)

		body := `{"status":"em_execucao"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var resp struct {
			Task struct {
				Status string `json:"status"`
			} `json:"task"`
			Warnings []struct {
				Code string `json:"code"`
			} `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Task.Status != "em_execucao" {
			t.Fatalf("unexpected status: %s", w.Body.String())
		}
		if len(resp.Warnings) != 1 || resp.Warnings[0].Code != "WORK_ORDER_AUTO_START_FAILED" {
			t.Fatalf("expected auto-start warning, got %s", w.Body.String())
		}
	})

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewTaskHandler(mocks.NewMockITaskUseCase(ctrl))

		r := gin.New()
		r.PATCH("/v1/tasks/:taskId/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITaskUseCase(ctrl)
		h := NewTaskHandler(uc)

		uc.EXPECT().SetTaskStatus(gomock.Any(), "t-1", entities.TaskStatusDone).Return(usecase.TaskStatusChange{}, usecase.ErrIllegalTaskTransition)

		r := gin.New()
		r.PATCH("/v1/tasks/:taskId/status", h.UpdateStatus)

		body := `{"status":"concluida"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/tasks/t-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
