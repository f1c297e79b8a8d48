package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	HandleAPIError(c, err)
	return rec
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid session", apperrors.ErrSessionInvalid, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"department not found", apperrors.ErrDepartmentNotFound, http.StatusNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"course code exists", apperrors.ErrCourseCodeAlreadyExists, http.StatusConflict},
		{"department exists", apperrors.ErrDepartmentAlreadyExists, http.StatusConflict},
		{"department has relations", apperrors.ErrDepartmentHasRelations, http.StatusConflict},
		{"course full", apperrors.ErrCourseFull, http.StatusConflict},
		{"unknown", errors.New("pg: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := respondWith(tc.err)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}

			var resp dto.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Success {
				t.Fatal("error response must not report success")
			}
			if resp.Message == "" {
				t.Fatal("error response must carry a message")
			}
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	rec := respondWith(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Internal server error" {
		t.Fatalf("internal error details leaked: %q", resp.Message)
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	rec := respondWith(apperrors.NewBadRequestError("Seat limit cannot be negative"))

	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Seat limit cannot be negative" {
		t.Fatalf("expected custom message, got %q", resp.Message)
	}
}
