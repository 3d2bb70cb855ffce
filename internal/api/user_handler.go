package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest defines the expected JSON for creating a user.
type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOrGetUser handles POST /api/users. Posting an existing name
// returns the existing user rather than a duplicate.
func (h *UserHandler) CreateOrGetUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateOrGetUser(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create user.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /api/users/:user_id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("user_id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, fmt.Sprintf("user %q not found", userID))
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
