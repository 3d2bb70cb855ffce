package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template service dependency.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// TemplateRequest defines the expected JSON for creating or updating a
// template. The same shape serves both POST and PUT.
type TemplateRequest struct {
	Name      string                    `json:"name" binding:"required"`
	Exercises []domain.TemplateExercise `json:"exercises"`
}

// GetTemplates handles GET /api/templates/:user_id. Results come back
// newest created first.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	userID := c.Param("user_id")

	templates, err := h.templateService.GetTemplates(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve templates.")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// CreateTemplate handles POST /api/templates/:user_id. Every call
// creates a new template; names are not deduplicated.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID := c.Param("user_id")

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), userID, req.Name, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create template.")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate handles PUT /api/templates/:template_id.
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID := c.Param("template_id")

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), templateID, req.Name, req.Exercises)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("template %q not found", templateID))
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update template.")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate handles DELETE /api/templates/:template_id.
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID := c.Param("template_id")

	err := h.templateService.DeleteTemplate(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("template %q not found", templateID))
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete template.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}
