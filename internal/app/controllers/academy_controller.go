package controllers

import (
	"net/http"

	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/app/models/dto"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AcademyController handles academy operations
type AcademyController struct {
	academyService services.AcademyService
}

// NewAcademyController creates a new AcademyController
func NewAcademyController(academyService services.AcademyService) *AcademyController {
	return &AcademyController{
		academyService: academyService,
	}
}

// ListAcademies lists academies with their course counts
// @Summary List academies
// @Tags academies
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Academy
// @Router /academies [get]
func (c *AcademyController) ListAcademies(ctx *gin.Context) {
	academies, err := c.academyService.ListAcademies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, academies)
}

// GetAcademy retrieves an academy with its courses
// @Summary Get an academy
// @Tags academies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Academy ID" Format(uuid)
// @Success 200 {object} models.Academy
// @Failure 404 {object} dto.ErrorResponse "academy not found"
// @Router /academies/{id} [get]
func (c *AcademyController) GetAcademy(ctx *gin.Context) {
	academy, err := c.academyService.GetAcademyByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, academy)
}

// CreateAcademy creates an academy
// @Summary Create an academy
// @Tags academies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AcademyRequest true "Academy"
// @Success 201 {object} models.Academy
// @Failure 400 {object} dto.ErrorResponse "Validation error or name already exists"
// @Router /academies [post]
func (c *AcademyController) CreateAcademy(ctx *gin.Context) {
	var req dto.AcademyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	academy := &models.Academy{Name: req.Name, Description: req.Description}
	if err := c.academyService.CreateAcademy(ctx.Request.Context(), academy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, academy)
}

// UpdateAcademy rewrites an academy
// @Summary Update an academy
// @Tags academies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Academy ID" Format(uuid)
// @Param request body dto.AcademyRequest true "Academy"
// @Success 200 {object} models.Academy
// @Failure 400 {object} dto.ErrorResponse "Validation error or name already exists"
// @Failure 404 {object} dto.ErrorResponse "academy not found"
// @Router /academies/{id} [put]
func (c *AcademyController) UpdateAcademy(ctx *gin.Context) {
	var req dto.AcademyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	academy := &models.Academy{ID: ctx.Param("id"), Name: req.Name, Description: req.Description}
	if err := c.academyService.UpdateAcademy(ctx.Request.Context(), academy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, academy)
}

// DeleteAcademy removes an academy that owns no course
// @Summary Delete an academy
// @Tags academies
// @Security ApiKeyAuth
// @Param id path string true "Academy ID" Format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "cannot delete academy with courses"
// @Failure 404 {object} dto.ErrorResponse "Record to delete does not exist."
// @Router /academies/{id} [delete]
func (c *AcademyController) DeleteAcademy(ctx *gin.Context) {
	if err := c.academyService.DeleteAcademy(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
