package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecordHandler holds the record service dependency.
type RecordHandler struct {
	recordService service.RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// SubmitRecordRequest defines the expected JSON for submitting a
// personal record. Clients send the full record; id and created_at are
// filled in when omitted.
type SubmitRecordRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	ExerciseID   string  `json:"exercise_id" binding:"required"`
	ExerciseName string  `json:"exercise_name" binding:"required"`
	MaxWeight    float64 `json:"max_weight"`
	Reps         int     `json:"reps"`
	Date         string  `json:"date" binding:"required"`
	CreatedAt    string  `json:"created_at"`
}

// GetRecords handles GET /api/records/:user_id. Results come back
// heaviest first.
func (h *RecordHandler) GetRecords(c *gin.Context) {
	userID := c.Param("user_id")

	records, err := h.recordService.GetRecords(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve records.")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetRecordForExercise handles GET /api/records/:user_id/:exercise_id.
// Responds with JSON null when no record exists for that exercise.
func (h *RecordHandler) GetRecordForExercise(c *gin.Context) {
	userID := c.Param("user_id")
	exerciseID := c.Param("exercise_id")

	record, err := h.recordService.GetRecordForExercise(c.Request.Context(), userID, exerciseID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve record.")
		return
	}

	c.JSON(http.StatusOK, record)
}

// SubmitRecord handles POST /api/records/:user_id. The stored record
// only changes when the candidate beats the existing max weight.
func (h *RecordHandler) SubmitRecord(c *gin.Context) {
	userID := c.Param("user_id")

	var req SubmitRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	candidate := domain.PersonalRecord{
		ID:           req.ID,
		UserID:       req.UserID,
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		MaxWeight:    req.MaxWeight,
		Reps:         req.Reps,
		Date:         req.Date,
		CreatedAt:    req.CreatedAt,
	}

	record, err := h.recordService.SubmitRecord(c.Request.Context(), userID, candidate)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to submit record.")
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
