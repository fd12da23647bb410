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

// WorkoutPlanHandler handles workout-plan HTTP requests
type WorkoutPlanHandler struct {
	plans  usecase.WorkoutPlanUseCase
	logger coreport.Logger
}

// NewWorkoutPlanHandler creates a new workout-plan handler instance
func NewWorkoutPlanHandler(plans usecase.WorkoutPlanUseCase, logger coreport.Logger) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{
		plans:  plans,
		logger: logger,
	}
}

// GeneratePlan handles POST /users/:userId/workout-plan
func (h *WorkoutPlanHandler) GeneratePlan(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	caller := middleware.CallerPrincipal(c)
	plan, err := h.plans.GenerateWorkoutPlan(c.Request.Context(), caller, userID)
	if err != nil {
		if !domainerr.IsNotFound(err) && !domainerr.IsForbidden(err) && !domainerr.IsExists(err) {
			h.logger.Error("Error generating workout plan", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWorkoutPlanResponse(plan))
}

// GetPlan handles GET /users/:userId/workout-plan
func (h *WorkoutPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	plan, err := h.plans.GetUserWorkoutPlan(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutPlanResponse(plan))
}

// UpdatePlan handles PATCH /workout-plans/:planId
func (h *WorkoutPlanHandler) UpdatePlan(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}

	var req dto.UpdateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidRequest,
			Message: "Invalid request body",
		})
		return
	}

	caller := middleware.CallerPrincipal(c)
	plan, err := h.plans.UpdateUserWorkoutPlan(c.Request.Context(), caller, planID, req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutPlanResponse(plan))
}

// DeletePlan handles DELETE /workout-plans/:planId
func (h *WorkoutPlanHandler) DeletePlan(c *gin.Context) {
	planID, ok := parseID(c, "planId")
	if !ok {
		return
	}

	caller := middleware.CallerPrincipal(c)
	plan, err := h.plans.DeleteUserWorkoutPlan(c.Request.Context(), caller, planID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWorkoutPlanResponse(plan))
}
