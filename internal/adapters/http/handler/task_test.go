package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/task"
)

type stubTaskUseCase struct {
	tasks     []*task.Task
	listErr   error
	submitErr error
	submitted []int64
}

func (s *stubTaskUseCase) ListAssigned(ctx context.Context, accountID int64) ([]*task.Task, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.tasks, nil
}

func (s *stubTaskUseCase) Submit(ctx context.Context, accountID, taskID int64) error {
	s.submitted = append(s.submitted, taskID)
	return s.submitErr
}

func newTaskEngine(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewTaskHandler(uc)
	authorized := engine.Group("/", RequireAuth(&stubVerifier{accountID: 10}))
	authorized.GET("/tasks", handler.List)
	authorized.POST("/tasks/:id/submit", handler.Submit)
	return engine
}

func TestTaskHandler_List_RendersDeadlineAndComment(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	comment := "missing certificate"
	uc := &stubTaskUseCase{tasks: []*task.Task{
		{ID: 1, Title: "Quarterly report", Description: "Compile Q2 numbers", Status: task.StatusInProgress, Deadline: &deadline},
		{ID: 2, Title: "Safety training", Description: "Complete the e-learning module", Status: task.StatusRejected, RejectionComment: &comment},
	}}
	engine := newTaskEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodGet, "/tasks"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp []map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp))
	}

	if string(resp[0]["deadline"]) != `"2025-07-01"` {
		t.Errorf("unexpected deadline: %s", resp[0]["deadline"])
	}
	if _, ok := resp[0]["rejection_comment"]; ok {
		t.Errorf("rejection_comment must be omitted when absent: %s", rec.Body.String())
	}

	// 期限なしタスクは deadline: null で返す。
	if string(resp[1]["deadline"]) != "null" {
		t.Errorf("expected null deadline, got %s", resp[1]["deadline"])
	}
	if string(resp[1]["rejection_comment"]) != `"missing certificate"` {
		t.Errorf("unexpected rejection_comment: %s", resp[1]["rejection_comment"])
	}
}

func TestTaskHandler_List_EmptyIsAnArray(t *testing.T) {
	t.Parallel()

	engine := newTaskEngine(&stubTaskUseCase{tasks: []*task.Task{}})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodGet, "/tasks"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestTaskHandler_Submit_Success(t *testing.T) {
	t.Parallel()

	uc := &stubTaskUseCase{}
	engine := newTaskEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodPost, "/tasks/5/submit"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Task submitted successfully" {
		t.Errorf("unexpected message: %q", resp["message"])
	}
	if len(uc.submitted) != 1 || uc.submitted[0] != 5 {
		t.Errorf("unexpected submitted ids: %v", uc.submitted)
	}
}

func TestTaskHandler_Submit_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "存在しないか他人のタスク", err: task.ErrTaskNotFound, want: http.StatusNotFound},
		{name: "提出できない状態", err: task.ErrTaskNotSubmittable, want: http.StatusConflict},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			engine := newTaskEngine(&stubTaskUseCase{submitErr: tc.err})

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, authedRequest(http.MethodPost, "/tasks/5/submit"))

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestTaskHandler_Submit_NonNumericID(t *testing.T) {
	t.Parallel()

	uc := &stubTaskUseCase{}
	engine := newTaskEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodPost, "/tasks/abc/submit"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(uc.submitted) != 0 {
		t.Errorf("use case should not run for invalid id, saw %v", uc.submitted)
	}
}
