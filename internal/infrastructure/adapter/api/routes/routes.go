package routes

import (
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/handler"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. Mutations require a
// caller principal; queries stay open, mirroring the original's
// update/query call split.
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	planHandler *handler.WorkoutPlanHandler,
	authSecret string,
) {
	authorized := middleware.RequirePrincipal(authSecret)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", authorized, userHandler.CreateUser)
		userRoutes.GET("/:userId", userHandler.GetUser)
		userRoutes.PATCH("/:userId", authorized, userHandler.UpdateUser)
		userRoutes.DELETE("/:userId", authorized, userHandler.DeleteUser)

		userRoutes.POST("/:userId/workout-plan", authorized, planHandler.GeneratePlan)
		userRoutes.GET("/:userId/workout-plan", planHandler.GetPlan)
	}

	planRoutes := router.Group("/workout-plans")
	{
		planRoutes.PATCH("/:planId", authorized, planHandler.UpdatePlan)
		planRoutes.DELETE("/:planId", authorized, planHandler.DeletePlan)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
