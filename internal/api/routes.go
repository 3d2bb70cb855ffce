package api

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts all API routes on the router.
func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	userService service.UserService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	templateService service.TemplateService,
	recordService service.RecordService,
) {
	userHandler := NewUserHandler(userService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService, cfg.Limits)
	templateHandler := NewTemplateHandler(templateService)
	recordHandler := NewRecordHandler(recordService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Workout Tracker API - Simple Version (In-Memory Storage)"})
	})
	router.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running", "version": "1.0-simple"})
	})

	apiGroup := router.Group("/api")
	{
		// --- Users ---
		apiGroup.POST("/users", userHandler.CreateOrGetUser)
		apiGroup.GET("/users/:user_id", userHandler.GetUser)

		// --- Exercises ---
		apiGroup.GET("/exercises/:user_id", exerciseHandler.GetExercises)
		apiGroup.POST("/exercises/:user_id", exerciseHandler.CreateOrGetExercise)
		apiGroup.DELETE("/exercises/:exercise_id", exerciseHandler.DeleteExercise)

		// --- Workouts ---
		apiGroup.GET("/workouts/:user_id", workoutHandler.GetWorkouts)
		apiGroup.GET("/workouts/:user_id/date/:date", workoutHandler.GetWorkoutByDate)
		apiGroup.POST("/workouts/:user_id", workoutHandler.LogWorkout)
		apiGroup.DELETE("/workouts/:workout_id", workoutHandler.DeleteWorkout)

		// --- Stats ---
		apiGroup.GET("/stats/:user_id/:exercise_id", workoutHandler.GetExerciseStats)

		// --- Templates ---
		apiGroup.GET("/templates/:user_id", templateHandler.GetTemplates)
		apiGroup.POST("/templates/:user_id", templateHandler.CreateTemplate)
		apiGroup.PUT("/templates/:template_id", templateHandler.UpdateTemplate)
		apiGroup.DELETE("/templates/:template_id", templateHandler.DeleteTemplate)

		// --- Records ---
		apiGroup.GET("/records/:user_id", recordHandler.GetRecords)
		apiGroup.GET("/records/:user_id/:exercise_id", recordHandler.GetRecordForExercise)
		apiGroup.POST("/records/:user_id", recordHandler.SubmitRecord)
	}
}
