package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
)

// maxCRUDBodyBytes bounds the CRUD request body; catalog payloads are tiny.
const maxCRUDBodyBytes = 1 << 20

// AdminController handles the catalog CRUD endpoint. One route dispatches on
// the entity query parameter and the HTTP method; POST bodies may carry
// "_method": "PUT" to request an update from clients that cannot issue
// native PUT.
type AdminController struct {
	studentService    services.StudentService
	courseService     services.CourseService
	departmentService services.DepartmentService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	studentService services.StudentService,
	courseService services.CourseService,
	departmentService services.DepartmentService,
) *AdminController {
	return &AdminController{
		studentService:    studentService,
		courseService:     courseService,
		departmentService: departmentService,
	}
}

// Handle dispatches a CRUD request by entity and action.
// @Summary Catalog CRUD
// @Description Creates, updates or deletes a catalog entity. The action defaults from the HTTP method and may be overridden with the action query parameter or a "_method": "PUT" field in POST bodies. Deletes take an id query parameter.
// @Tags admin
// @Accept json
// @Produce json
// @Param entity query string true "Entity" Enums(students, courses, departments)
// @Param action query string false "Action" Enums(create, update, delete)
// @Param id query int false "Entity ID (delete only)"
// @Success 200 {object} dto.APIResponse "Operation completed"
// @Failure 400 {object} dto.APIResponse "Unknown entity/action or invalid payload"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Failure 404 {object} dto.APIResponse "Entity not found"
// @Failure 409 {object} dto.APIResponse "Uniqueness or relation conflict"
// @Router /crud [post]
func (c *AdminController) Handle(ctx *gin.Context) {
	entity := ctx.Query("entity")

	var body []byte
	if ctx.Request.Method != http.MethodDelete {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxCRUDBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse("Request body too large"))
				return
			}
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
			return
		}
	}

	action := c.resolveAction(ctx, body)

	switch entity {
	case "students":
		c.handleStudent(ctx, action, body)
	case "courses":
		c.handleCourse(ctx, action, body)
	case "departments":
		c.handleDepartment(ctx, action, body)
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown entity"))
	}
}

// resolveAction derives the action from the query parameter when present,
// otherwise from the HTTP method, honoring the body's _method override.
func (c *AdminController) resolveAction(ctx *gin.Context, body []byte) string {
	if action := ctx.Query("action"); action != "" {
		return action
	}

	switch ctx.Request.Method {
	case http.MethodPut:
		return "update"
	case http.MethodDelete:
		return "delete"
	}

	var probe struct {
		Method string `json:"_method"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Method == http.MethodPut {
		return "update"
	}
	return "create"
}

func (c *AdminController) handleStudent(ctx *gin.Context, action string, body []byte) {
	switch action {
	case "create":
		var req dto.CreateStudentRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		student, err := c.studentService.Create(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Student created successfully",
			Data:    student,
		})
	case "update":
		var req dto.UpdateStudentRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		student, err := c.studentService.Update(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Student updated successfully",
			Data:    student,
		})
	case "delete":
		id, ok := deleteID(ctx)
		if !ok {
			return
		}
		if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown action"))
	}
}

func (c *AdminController) handleCourse(ctx *gin.Context, action string, body []byte) {
	switch action {
	case "create":
		var req dto.CreateCourseRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		course, err := c.courseService.Create(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Course created successfully",
			Data:    course,
		})
	case "update":
		var req dto.UpdateCourseRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		course, err := c.courseService.Update(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Course updated successfully",
			Data:    course,
		})
	case "delete":
		id, ok := deleteID(ctx)
		if !ok {
			return
		}
		if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown action"))
	}
}

func (c *AdminController) handleDepartment(ctx *gin.Context, action string, body []byte) {
	switch action {
	case "create":
		var req dto.CreateDepartmentRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		department, err := c.departmentService.Create(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Department created successfully",
			Data:    department,
		})
	case "update":
		var req dto.UpdateDepartmentRequest
		if !decodeBody(ctx, body, &req) {
			return
		}
		department, err := c.departmentService.Update(ctx.Request.Context(), &req)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Success: true,
			Message: "Department updated successfully",
			Data:    department,
		})
	case "delete":
		id, ok := deleteID(ctx)
		if !ok {
			return
		}
		if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted successfully"))
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown action"))
	}
}

// decodeBody unmarshals the raw body and runs the binding validators over
// the result. The body was read up front so the _method probe and the real
// decode can share it.
func decodeBody(ctx *gin.Context, body []byte, out interface{}) bool {
	if err := json.Unmarshal(body, out); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return false
	}
	if err := binding.Validator.ValidateStruct(out); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return false
	}
	return true
}

func deleteID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}
