package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/models/dto/enums"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
)

// EnrollmentController handles seat registration, drops and ledger listings.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Register claims a seat for a student in a course.
// @Summary Register for a course
// @Description Atomically claims a seat; fails when the course is full or the student is already registered
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student and course"
// @Success 200 {object} dto.APIResponse "Registered"
// @Failure 400 {object} dto.APIResponse "Invalid payload"
// @Failure 403 {object} dto.APIResponse "Students may only register themselves"
// @Failure 404 {object} dto.APIResponse "Student or course not found"
// @Failure 409 {object} dto.APIResponse "Course full or already registered"
// @Router /registrations [post]
func (c *EnrollmentController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	if !c.mayActFor(ctx, req.StudentID) {
		return
	}

	outcome := c.enrollmentService.Register(ctx.Request.Context(), req.StudentID, req.CourseID)
	c.respondOutcome(ctx, outcome)
}

// Drop releases a student's seat in a course.
// @Summary Drop a course
// @Description Removes the registration, freeing the seat immediately
// @Tags registrations
// @Produce json
// @Param student_id query int true "Student ID"
// @Param course_id query int true "Course ID"
// @Success 200 {object} dto.APIResponse "Dropped"
// @Failure 400 {object} dto.APIResponse "Missing or invalid IDs"
// @Failure 403 {object} dto.APIResponse "Students may only drop their own registrations"
// @Failure 404 {object} dto.APIResponse "Not registered"
// @Router /registrations [delete]
func (c *EnrollmentController) Drop(ctx *gin.Context) {
	studentID, err := parseIDQuery(ctx, "student_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student_id"))
		return
	}
	courseID, err := parseIDQuery(ctx, "course_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid course_id"))
		return
	}

	if !c.mayActFor(ctx, studentID) {
		return
	}

	outcome := c.enrollmentService.Drop(ctx.Request.Context(), studentID, courseID)
	c.respondOutcome(ctx, outcome)
}

// List returns enrollments, scoped by student_id or course_id when given.
// @Summary List enrollments
// @Description Lists registrations scoped by student, by course, or the full ledger
// @Tags registrations
// @Produce json
// @Param student_id query int false "Scope to one student"
// @Param course_id query int false "Scope to one course"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentView} "Enrollments"
// @Failure 400 {object} dto.APIResponse "Invalid scope parameter"
// @Failure 403 {object} dto.APIResponse "Students may only view their own registrations"
// @Router /enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	principal := middleware.PrincipalFromContext(ctx)

	if raw := ctx.Query("student_id"); raw != "" {
		studentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student_id"))
			return
		}
		if !c.mayActFor(ctx, studentID) {
			return
		}
		enrollments, err := c.enrollmentService.ListByStudent(ctx.Request.Context(), studentID)
		c.respondList(ctx, enrollments, err)
		return
	}

	if raw := ctx.Query("course_id"); raw != "" {
		courseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid course_id"))
			return
		}
		enrollments, err := c.enrollmentService.ListByCourse(ctx.Request.Context(), courseID)
		c.respondList(ctx, enrollments, err)
		return
	}

	// The unscoped ledger is admin only; students fall back to their own rows.
	if principal != nil && principal.Role == string(models.RoleStudent) {
		enrollments, err := c.enrollmentService.ListByStudent(ctx.Request.Context(), principal.ID)
		c.respondList(ctx, enrollments, err)
		return
	}
	enrollments, err := c.enrollmentService.ListAll(ctx.Request.Context())
	c.respondList(ctx, enrollments, err)
}

// mayActFor enforces that students only touch their own registrations.
// Admins may act for any student. Writes the 403 itself and reports whether
// the caller may proceed.
func (c *EnrollmentController) mayActFor(ctx *gin.Context, studentID int64) bool {
	principal := middleware.PrincipalFromContext(ctx)
	if principal == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return false
	}
	if principal.Role == string(models.RoleStudent) && principal.ID != studentID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse("Students may only manage their own registrations"))
		return false
	}
	return true
}

func (c *EnrollmentController) respondOutcome(ctx *gin.Context, outcome services.Outcome) {
	status := http.StatusOK
	switch outcome.Status {
	case enums.OutcomeAlreadyRegistered, enums.OutcomeCourseFull:
		status = http.StatusConflict
	case enums.OutcomeNotFound, enums.OutcomeNotRegistered:
		status = http.StatusNotFound
	case enums.OutcomeSystemError:
		status = http.StatusInternalServerError
	}

	ctx.JSON(status, dto.APIResponse{
		Success: outcome.Status.Success(),
		Message: outcome.Message,
		Data:    outcome,
	})
}

func (c *EnrollmentController) respondList(ctx *gin.Context, enrollments []dto.EnrollmentView, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(enrollments))
}

func parseIDQuery(ctx *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Query(name), 10, 64)
}
