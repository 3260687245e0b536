package controllers

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StudentController handles student operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Student
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// SearchStudents finds students by dni or last name
// @Summary Search students
// @Description Matches the exact dni and/or the last name, ignoring case. Both keys are combined when given.
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param dni query string false "DNI"
// @Param lastname query string false "Last name"
// @Success 200 {array} models.Student
// @Failure 400 {object} dto.ErrorResponse "dni or lastname is required"
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	students, err := c.studentService.SearchStudents(ctx.Request.Context(), models.StudentSearch{
		LastName: ctx.Query("lastname"),
		DNI:      ctx.Query("dni"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudent retrieves a student with its user and enroll count
// @Summary Get a student
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a student together with its user row
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Validation error, email or dni already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := newStudent(req.DNI, req.Email, req.Name, req.LastName, req.Partner)
	if err := c.studentService.CreateStudent(ctx.Request.Context(), student, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent rewrites a student and its user row
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Student ID" Format(uuid)
// @Param request body dto.UpdateStudentRequest true "Student"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Validation error, email or dni already exists"
// @Failure 404 {object} dto.ErrorResponse "student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := newStudent(req.DNI, req.Email, req.Name, req.LastName, req.Partner)
	student.ID = ctx.Param("id")

	updated, err := c.studentService.UpdateStudent(ctx.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteStudent removes a student, its enrolls and its user row
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {object} models.Student "The deleted student"
// @Failure 404 {object} dto.ErrorResponse "Record to delete does not exist."
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	student, err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// ListStudentEnrolls lists a student's enrolls, earliest finished first
// @Summary List a student's enrolls
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Student ID" Format(uuid)
// @Success 200 {array} models.Enroll
// @Router /students/{id}/enrolls [get]
func (c *StudentController) ListStudentEnrolls(ctx *gin.Context) {
	enrolls, err := c.studentService.ListStudentEnrolls(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolls)
}

// EnrollStudent enrolls a student into one or more courses at once
// @Summary Bulk enroll a student
// @Tags students
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Student ID" Format(uuid)
// @Param request body dto.BulkEnrollRequest true "Courses"
// @Success 201 {object} models.Student "The student with all its enrolls"
// @Failure 400 {object} dto.ErrorResponse "Validation error or unknown course"
// @Failure 404 {object} dto.ErrorResponse "student not found"
// @Router /students/{id}/enroll [post]
func (c *StudentController) EnrollStudent(ctx *gin.Context) {
	var req dto.BulkEnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrolls := make([]*models.Enroll, 0, len(req.Enrolls))
	for _, in := range req.Enrolls {
		enrolls = append(enrolls, newEnroll("", in.CourseID, in.EmittedAt, in.FinishedAt, in.Bachelor))
	}

	student, err := c.studentService.EnrollStudent(ctx.Request.Context(), ctx.Param("id"), enrolls)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

func newStudent(dni, email, name, lastName string, partner bool) *models.Student {
	return &models.Student{
		Partner: partner,
		User: &models.User{
			Email:    email,
			Name:     name,
			LastName: lastName,
			DNI:      &dni,
		},
	}
}
