package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/models/dto/enums"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
)

// stubEnrollmentService returns canned outcomes; the controller's job is the
// HTTP mapping, not the registration logic.
type stubEnrollmentService struct {
	registerOutcome services.Outcome
	dropOutcome     services.Outcome
}

func (s *stubEnrollmentService) Register(ctx context.Context, studentID, courseID int64) services.Outcome {
	return s.registerOutcome
}

func (s *stubEnrollmentService) Drop(ctx context.Context, studentID, courseID int64) services.Outcome {
	return s.dropOutcome
}

func (s *stubEnrollmentService) AvailableSeats(ctx context.Context, courseID int64) (int, error) {
	return 0, nil
}

func (s *stubEnrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]dto.EnrollmentView, error) {
	return []dto.EnrollmentView{{ID: 1, StudentID: studentID}}, nil
}

func (s *stubEnrollmentService) ListByCourse(ctx context.Context, courseID int64) ([]dto.EnrollmentView, error) {
	return []dto.EnrollmentView{{ID: 1, CourseID: courseID}}, nil
}

func (s *stubEnrollmentService) ListAll(ctx context.Context) ([]dto.EnrollmentView, error) {
	return []dto.EnrollmentView{{ID: 1}, {ID: 2}}, nil
}

func setPrincipal(principal *dto.PrincipalDTO) gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal != nil {
			c.Set(middleware.ContextPrincipalKey, principal)
		}
		c.Next()
	}
}

func newEnrollmentRouter(svc services.EnrollmentService, principal *dto.PrincipalDTO) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewEnrollmentController(svc)
	router.Use(setPrincipal(principal))
	router.POST("/registrations", controller.Register)
	router.DELETE("/registrations", controller.Drop)
	router.GET("/enrollments", controller.List)
	return router
}

func doRegister(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/registrations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterOutcomeStatusMapping(t *testing.T) {
	admin := &dto.PrincipalDTO{ID: 1, Role: "admin"}

	cases := []struct {
		name       string
		outcome    services.Outcome
		wantStatus int
	}{
		{"registered", services.Outcome{Status: enums.OutcomeRegistered, Message: "ok"}, http.StatusOK},
		{"already registered", services.Outcome{Status: enums.OutcomeAlreadyRegistered}, http.StatusConflict},
		{"course full", services.Outcome{Status: enums.OutcomeCourseFull}, http.StatusConflict},
		{"not found", services.Outcome{Status: enums.OutcomeNotFound}, http.StatusNotFound},
		{"system error", services.Outcome{Status: enums.OutcomeSystemError}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newEnrollmentRouter(&stubEnrollmentService{registerOutcome: tc.outcome}, admin)
			rec := doRegister(router, `{"student_id": 7, "course_id": 3}`)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Success != tc.outcome.Status.Success() {
				t.Fatalf("success flag mismatch: %+v", resp)
			}
		})
	}
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	router := newEnrollmentRouter(&stubEnrollmentService{}, &dto.PrincipalDTO{ID: 1, Role: "admin"})

	rec := doRegister(router, `{"student_id": 7}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing course_id, got %d", rec.Code)
	}
}

func TestStudentCannotActForOthers(t *testing.T) {
	student := &dto.PrincipalDTO{ID: 7, Role: "student"}
	router := newEnrollmentRouter(&stubEnrollmentService{
		registerOutcome: services.Outcome{Status: enums.OutcomeRegistered},
	}, student)

	rec := doRegister(router, `{"student_id": 8, "course_id": 3}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/registrations?student_id=8&course_id=3", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on drop, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/enrollments?student_id=8", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on listing, got %d", rec.Code)
	}
}

func TestStudentMayActForSelf(t *testing.T) {
	student := &dto.PrincipalDTO{ID: 7, Role: "student"}
	router := newEnrollmentRouter(&stubEnrollmentService{
		registerOutcome: services.Outcome{Status: enums.OutcomeRegistered, Message: "ok"},
	}, student)

	rec := doRegister(router, `{"student_id": 7, "course_id": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUnscopedListingFallsBackForStudents(t *testing.T) {
	student := &dto.PrincipalDTO{ID: 7, Role: "student"}
	router := newEnrollmentRouter(&stubEnrollmentService{}, student)

	req := httptest.NewRequest(http.MethodGet, "/enrollments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool                 `json:"success"`
		Data    []dto.EnrollmentView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].StudentID != 7 {
		t.Fatalf("expected the student's own rows, got %+v", resp.Data)
	}
}

func TestUnauthenticatedRegisterRejected(t *testing.T) {
	router := newEnrollmentRouter(&stubEnrollmentService{}, nil)

	rec := doRegister(router, `{"student_id": 7, "course_id": 3}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
