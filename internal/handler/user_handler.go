package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/models"
)

var userMessages = errorMessages{notFound: "User not found"}

// UserResponse is the caller's own account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email" example:"player@example.com"`
	Username  string    `json:"username" example:"meeple"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Username: u.Username, CreatedAt: u.CreatedAt}
}

// UserHandler serves /users.
type UserHandler struct {
	users UserStore
	log   zerolog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users UserStore, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Retrieves the account of the authenticated caller.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), caller)
	if err != nil {
		respondError(c, h.log, err, userMessages)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}
