package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
)

type stubEmployeeUseCase struct {
	profile *employee.Profile
	err     error
}

func (s *stubEmployeeUseCase) ResolveByAccount(ctx context.Context, accountID int64) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeUseCase) GetProfile(ctx context.Context, accountID int64) (*employee.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newProfileEngine(uc employee.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/profile", RequireAuth(&stubVerifier{accountID: 10}), NewProfileHandler(uc).Get)
	return engine
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestProfileHandler_Get_AllFieldsPresent(t *testing.T) {
	t.Parallel()

	department := "Engineering"
	managerName := "Hanako Sato"
	managerEmail := "hsato@example.com"
	uc := &stubEmployeeUseCase{profile: &employee.Profile{
		EmployeeID:     3,
		FirstName:      "Taro",
		LastName:       "Yamada",
		Position:       "Engineer",
		HireDate:       time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		DepartmentName: &department,
		ManagerName:    &managerName,
		ManagerEmail:   &managerEmail,
	}}
	engine := newProfileEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodGet, "/profile"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 3 || resp.FirstName != "Taro" || resp.LastName != "Yamada" {
		t.Errorf("unexpected identity fields: %+v", resp)
	}
	if resp.HireDate != "2023-04-01" {
		t.Errorf("unexpected hire_date: %q", resp.HireDate)
	}
	if resp.DepartmentName == nil || *resp.DepartmentName != "Engineering" {
		t.Errorf("unexpected department_name: %+v", resp.DepartmentName)
	}
}

func TestProfileHandler_Get_AbsentLegsRenderAsNull(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{profile: &employee.Profile{
		EmployeeID: 3,
		FirstName:  "Taro",
		LastName:   "Yamada",
		Position:   "Engineer",
		HireDate:   time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}}
	engine := newProfileEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodGet, "/profile"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, field := range []string{"department_name", "manager_name", "manager_email"} {
		value, ok := raw[field]
		if !ok {
			t.Errorf("field %q must be present", field)
			continue
		}
		if string(value) != "null" {
			t.Errorf("field %q must be null, got %s", field, value)
		}
	}
}

func TestProfileHandler_Get_NoLinkedEmployee(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{err: employee.ErrEmployeeNotFound}
	engine := newProfileEngine(uc)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, authedRequest(http.MethodGet, "/profile"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
