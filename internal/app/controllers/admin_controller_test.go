package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
)

// The stubs record the action the controller dispatched; the services' own
// behavior is covered by their package tests.
type stubStudentService struct{ lastAction string }

func (s *stubStudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	s.lastAction = "create"
	return &models.Student{ID: 1, Name: req.Name}, nil
}

func (s *stubStudentService) Update(ctx context.Context, req *dto.UpdateStudentRequest) (*models.Student, error) {
	s.lastAction = "update"
	return &models.Student{ID: req.ID, Name: req.Name}, nil
}

func (s *stubStudentService) Delete(ctx context.Context, id int64) error {
	s.lastAction = "delete"
	return nil
}

func (s *stubStudentService) GetAll(ctx context.Context) ([]dto.StudentView, error) {
	return nil, nil
}

type stubCourseService struct{ lastAction string }

func (s *stubCourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	s.lastAction = "create"
	return &models.Course{ID: 1, Name: req.Name}, nil
}

func (s *stubCourseService) Update(ctx context.Context, req *dto.UpdateCourseRequest) (*models.Course, error) {
	s.lastAction = "update"
	return &models.Course{ID: req.ID, Name: req.Name}, nil
}

func (s *stubCourseService) Delete(ctx context.Context, id int64) error {
	s.lastAction = "delete"
	return nil
}

func (s *stubCourseService) GetAll(ctx context.Context) ([]dto.CourseView, error) {
	return nil, nil
}

type stubDepartmentService struct{ lastAction string }

func (s *stubDepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	s.lastAction = "create"
	return &models.Department{ID: 1, Name: req.Name}, nil
}

func (s *stubDepartmentService) Update(ctx context.Context, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	s.lastAction = "update"
	return &models.Department{ID: req.ID, Name: req.Name}, nil
}

func (s *stubDepartmentService) Delete(ctx context.Context, id int64) error {
	s.lastAction = "delete"
	return nil
}

func (s *stubDepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return nil, nil
}

func newAdminRouter(students *stubStudentService, courses *stubCourseService, departments *stubDepartmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAdminController(students, courses, departments)
	router.POST("/crud", controller.Handle)
	router.PUT("/crud", controller.Handle)
	router.DELETE("/crud", controller.Handle)
	return router
}

func doCrud(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCrudRejectsOversizedBody(t *testing.T) {
	router := newAdminRouter(&stubStudentService{}, &stubCourseService{}, &stubDepartmentService{})

	body := `{"name":"` + strings.Repeat("a", maxCRUDBodyBytes+1) + `"}`
	rec := doCrud(router, http.MethodPost, "/crud?entity=departments", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestCrudBodyMethodOverrideUpdates(t *testing.T) {
	departments := &stubDepartmentService{}
	router := newAdminRouter(&stubStudentService{}, &stubCourseService{}, departments)

	rec := doCrud(router, http.MethodPost, "/crud?entity=departments",
		`{"_method": "PUT", "id": 1, "name": "Physics"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if departments.lastAction != "update" {
		t.Fatalf("expected update dispatch, got %q", departments.lastAction)
	}
}

func TestCrudNativeMethodsDispatch(t *testing.T) {
	students := &stubStudentService{}
	router := newAdminRouter(students, &stubCourseService{}, &stubDepartmentService{})

	rec := doCrud(router, http.MethodPost, "/crud?entity=students",
		`{"name": "Ada Lovelace", "email": "ada@example.edu", "department_id": 1}`)
	if rec.Code != http.StatusOK || students.lastAction != "create" {
		t.Fatalf("expected create via POST, got %d action %q", rec.Code, students.lastAction)
	}

	rec = doCrud(router, http.MethodDelete, "/crud?entity=students&id=3", "")
	if rec.Code != http.StatusOK || students.lastAction != "delete" {
		t.Fatalf("expected delete via DELETE, got %d action %q", rec.Code, students.lastAction)
	}
}

func TestCrudDeleteRequiresID(t *testing.T) {
	router := newAdminRouter(&stubStudentService{}, &stubCourseService{}, &stubDepartmentService{})

	rec := doCrud(router, http.MethodDelete, "/crud?entity=students", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without id, got %d", rec.Code)
	}
}

func TestCrudUnknownEntity(t *testing.T) {
	router := newAdminRouter(&stubStudentService{}, &stubCourseService{}, &stubDepartmentService{})

	rec := doCrud(router, http.MethodPost, "/crud?entity=instructors", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown entity, got %d", rec.Code)
	}
}

func TestCrudValidationFailure(t *testing.T) {
	courses := &stubCourseService{}
	router := newAdminRouter(&stubStudentService{}, courses, &stubDepartmentService{})

	rec := doCrud(router, http.MethodPost, "/crud?entity=courses", `{"name": "Algorithms"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", rec.Code)
	}
	if courses.lastAction != "" {
		t.Fatalf("service must not be called on invalid payload, got %q", courses.lastAction)
	}
}
