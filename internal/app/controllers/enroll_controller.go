package controllers

import (
	"net/http"
	"time"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// EnrollController handles enroll operations
type EnrollController struct {
	enrollService services.EnrollService
}

// NewEnrollController creates a new EnrollController
func NewEnrollController(enrollService services.EnrollService) *EnrollController {
	return &EnrollController{
		enrollService: enrollService,
	}
}

// ListEnrolls lists every enroll with its course and student
// @Summary List enrolls
// @Tags enrolls
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Enroll
// @Router /enrolls [get]
func (c *EnrollController) ListEnrolls(ctx *gin.Context) {
	enrolls, err := c.enrollService.ListEnrolls(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolls)
}

// SearchEnrolls finds certificates by the student's last name or dni
// @Summary Search enrolls
// @Description Public lookup of certificates. The last name wins when both keys are given.
// @Tags enrolls
// @Produce json
// @Param lastname query string false "Student last name"
// @Param dni query string false "Student DNI"
// @Success 200 {array} models.Certificate
// @Failure 400 {object} dto.ErrorResponse "lastname or dni is required"
// @Router /enrolls/search [get]
func (c *EnrollController) SearchEnrolls(ctx *gin.Context) {
	enrolls, err := c.enrollService.SearchEnrolls(ctx.Request.Context(), models.EnrollSearch{
		LastName: ctx.Query("lastname"),
		DNI:      ctx.Query("dni"),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enrolls)
}

// GetEnroll retrieves an enroll
// @Summary Get an enroll
// @Tags enrolls
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Enroll ID" Format(uuid)
// @Success 200 {object} models.Enroll
// @Failure 404 {object} dto.ErrorResponse "enroll not found"
// @Router /enrolls/{id} [get]
func (c *EnrollController) GetEnroll(ctx *gin.Context) {
	enroll, err := c.enrollService.GetEnrollByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enroll)
}

// CreateEnroll enrolls one student into one course
// @Summary Create an enroll
// @Tags enrolls
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateEnrollRequest true "Enroll"
// @Success 201 {object} models.Enroll
// @Failure 400 {object} dto.ErrorResponse "Validation error, unknown student or course"
// @Router /enrolls [post]
func (c *EnrollController) CreateEnroll(ctx *gin.Context) {
	var req dto.CreateEnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enroll := newEnroll(req.StudentID, req.CourseID, req.EmittedAt, req.FinishedAt, req.Bachelor)
	if err := c.enrollService.CreateEnroll(ctx.Request.Context(), enroll); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, enroll)
}

// UpdateEnroll changes the dates or the bachelor flag of an enroll.
// PUT and PATCH share it; omitted fields are kept.
// @Summary Update an enroll
// @Tags enrolls
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Enroll ID" Format(uuid)
// @Param request body dto.UpdateEnrollRequest true "Fields to change"
// @Success 200 {object} models.Enroll
// @Failure 404 {object} dto.ErrorResponse "enroll not found"
// @Router /enrolls/{id} [put]
// @Router /enrolls/{id} [patch]
func (c *EnrollController) UpdateEnroll(ctx *gin.Context) {
	var req dto.UpdateEnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enroll, err := c.enrollService.UpdateEnroll(ctx.Request.Context(), ctx.Param("id"), models.EnrollUpdate{
		EmittedAt:  req.EmittedAt,
		FinishedAt: req.FinishedAt,
		Bachelor:   req.Bachelor,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enroll)
}

// DeleteEnroll removes an enroll
// @Summary Delete an enroll
// @Tags enrolls
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Enroll ID" Format(uuid)
// @Success 200 {object} models.Enroll "The deleted enroll"
// @Failure 404 {object} dto.ErrorResponse "Record to delete does not exist."
// @Router /enrolls/{id} [delete]
func (c *EnrollController) DeleteEnroll(ctx *gin.Context) {
	enroll, err := c.enrollService.DeleteEnroll(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, enroll)
}

// newEnroll builds an enroll from request fields. A missing emittedAt stays
// zero and is set to the current time by the service.
func newEnroll(studentID, courseID string, emittedAt, finishedAt *time.Time, bachelor bool) *models.Enroll {
	enroll := &models.Enroll{
		StudentID:  studentID,
		CourseID:   courseID,
		FinishedAt: finishedAt,
		Bachelor:   bachelor,
	}
	if emittedAt != nil {
		enroll.EmittedAt = *emittedAt
	}
	return enroll
}
