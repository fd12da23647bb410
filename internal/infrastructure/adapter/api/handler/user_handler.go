package handler

import (
	"net/http"

	domainerr "github.com/fitcore/workout-planner/internal/domain/error"
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/domain/port/usecase"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/dto"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  usecase.UserUseCase
	logger coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(users usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "userId")
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request body",
		})
		return
	}

	caller := middleware.CallerPrincipal(c)
	user, err := h.users.AddUser(c.Request.Context(), caller, req.Profile())
	if err != nil {
		h.logger.Error("Error creating user", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser handles PATCH /users/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request body",
		})
		return
	}

	caller := middleware.CallerPrincipal(c)
	user, err := h.users.UpdateUser(c.Request.Context(), caller, id, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser handles DELETE /users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "userId")
	if !ok {
		return
	}

	caller := middleware.CallerPrincipal(c)
	user, err := h.users.DeleteUser(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
