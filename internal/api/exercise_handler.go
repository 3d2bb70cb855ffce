package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetExercises handles GET /api/exercises/:user_id.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	userID := c.Param("user_id")

	exercises, err := h.exerciseService.GetExercises(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateOrGetExercise handles POST /api/exercises/:user_id. Posting an
// existing (user, name) pair returns the existing exercise.
func (h *ExerciseHandler) CreateOrGetExercise(c *gin.Context) {
	userID := c.Param("user_id")

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.CreateOrGetExercise(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise handles DELETE /api/exercises/:exercise_id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID := c.Param("exercise_id")

	err := h.exerciseService.DeleteExercise(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("exercise %q not found", exerciseID))
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "exercise deleted"})
}
