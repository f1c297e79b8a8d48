package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
)

// CatalogController handles the read-only catalog listings.
type CatalogController struct {
	courseService     services.CourseService
	departmentService services.DepartmentService
	studentService    services.StudentService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	courseService services.CourseService,
	departmentService services.DepartmentService,
	studentService services.StudentService,
) *CatalogController {
	return &CatalogController{
		courseService:     courseService,
		departmentService: departmentService,
		studentService:    studentService,
	}
}

// ListCourses returns all courses with live seat availability.
// @Summary List courses
// @Description Lists all courses with department names and available seat counts
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseView} "Courses"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// ListDepartments returns all departments.
// @Summary List departments
// @Description Lists all departments ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments"
// @Router /departments [get]
func (c *CatalogController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

// ListStudents returns all students. Admin only.
// @Summary List students
// @Description Lists all students with department names
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentView} "Students"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Failure 403 {object} dto.APIResponse "Admin only"
// @Router /students [get]
func (c *CatalogController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}
