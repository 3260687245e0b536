package controllers

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CourseController handles course operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses lists courses by name with their academy and enroll count
// @Summary List courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Course
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourse retrieves a course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse creates a course inside an academy
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CourseRequest true "Course"
// @Success 201 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Validation error or academy does not exist"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := newCourse(req)
	if err := c.courseService.CreateCourse(ctx.Request.Context(), course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse rewrites a course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID" Format(uuid)
// @Param request body dto.CourseRequest true "Course"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Validation error or academy does not exist"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course := newCourse(req)
	course.ID = ctx.Param("id")
	if err := c.courseService.UpdateCourse(ctx.Request.Context(), course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course with all its enrolls
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {object} repositories.CourseDeletion
// @Failure 404 {object} dto.ErrorResponse "Record to delete does not exist."
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	deletion, err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletion)
}

// ListCourseEnrolls lists a course's enrolls, latest emitted first
// @Summary List a course's enrolls
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course ID" Format(uuid)
// @Success 200 {array} models.Enroll
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrolls [get]
func (c *CourseController) ListCourseEnrolls(ctx *gin.Context) {
	enrolls, err := c.courseService.ListCourseEnrolls(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolls)
}

func newCourse(req dto.CourseRequest) *models.Course {
	return &models.Course{
		Name:        req.Name,
		Description: req.Description,
		EndDate:     req.EndDate,
		Hours:       req.Hours,
		AcademyID:   req.AcademyID,
	}
}
