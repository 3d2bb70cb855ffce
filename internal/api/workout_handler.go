package api

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency plus the
// configured default list limits.
type WorkoutHandler struct {
	workoutService service.WorkoutService
	limits         config.LimitsConfig
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService, limits config.LimitsConfig) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, limits: limits}
}

// LogWorkoutRequest defines the expected JSON for logging a workout.
type LogWorkoutRequest struct {
	Date      string                   `json:"date" binding:"required"`
	Exercises []domain.WorkoutExercise `json:"exercises"`
}

// GetWorkouts handles GET /api/workouts/:user_id?limit=. Results come
// back newest date first.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID := c.Param("user_id")

	limit, err := queryLimit(c, h.limits.Workouts)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	workouts, err := h.workoutService.GetWorkouts(c.Request.Context(), userID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWorkoutByDate handles GET /api/workouts/:user_id/date/:date.
// Responds with JSON null when no workout exists for that date.
func (h *WorkoutHandler) GetWorkoutByDate(c *gin.Context) {
	userID := c.Param("user_id")
	date := c.Param("date")

	workout, err := h.workoutService.GetWorkoutByDate(c.Request.Context(), userID, date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		return
	}

	c.JSON(http.StatusOK, workout)
}

// LogWorkout handles POST /api/workouts/:user_id. Posting to a date
// that already has a workout replaces its exercises wholesale.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID := c.Param("user_id")

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogWorkout(c.Request.Context(), userID, req.Date, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log workout.")
		}
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /api/workouts/:workout_id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID := c.Param("workout_id")

	err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("workout %q not found", workoutID))
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

// GetExerciseStats handles GET /api/stats/:user_id/:exercise_id?limit=.
// Results are in chronological order, oldest first.
func (h *WorkoutHandler) GetExerciseStats(c *gin.Context) {
	userID := c.Param("user_id")
	exerciseID := c.Param("exercise_id")

	limit, err := queryLimit(c, h.limits.Stats)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.workoutService.GetExerciseStats(c.Request.Context(), userID, exerciseID, limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
