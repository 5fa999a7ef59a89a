package api

import (
	"net/http"

	"laplante/coach-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, coachingService service.CoachingService) {
	h := NewCoachingHandler(coachingService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/state", h.GetState)
		apiV1.POST("/state/undo", h.Undo)

		sessionGroup := apiV1.Group("/session")
		{
			sessionGroup.POST("", h.SelectRole)
			sessionGroup.DELETE("", h.Logout)
			sessionGroup.PUT("/client", h.SelectClient)
		}

		// --- Roster and workouts ---
		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.GET("", h.GetClients)
			clientGroup.GET("/:clientId/workouts", h.GetWorkouts)
			clientGroup.GET("/:clientId/workouts/current", h.GetCurrentWorkout)
			// POST /api/v1/clients/{clientId}/workouts/{workoutId}/exercises/{exerciseId}/toggle
			clientGroup.POST("/:clientId/workouts/:workoutId/exercises/:exerciseId/toggle", h.ToggleExercise)
			clientGroup.POST("/:clientId/workouts/:workoutId/exercises/:exerciseId/sets", h.LogSet)
		}

		apiV1.GET("/users/:userId/metrics", h.GetMetrics)
		apiV1.GET("/users/:userId/metrics/latest", h.GetLatestMetric)
		apiV1.POST("/users/:userId/metrics", h.RecordWeight)
		apiV1.GET("/tips", h.GetTips)

		businessGroup := apiV1.Group("/business")
		{
			businessGroup.PATCH("", h.UpdateBusinessConfig)
			businessGroup.POST("/logo", h.UploadLogo)
			businessGroup.DELETE("/logo", h.ClearLogo)
		}

		apiV1.GET("/messages", h.GetConversation)
		apiV1.POST("/messages", h.SendMessage)

		adviceGroup := apiV1.Group("/advice")
		{
			adviceGroup.GET("", h.GetAdvice)
			adviceGroup.POST("/refresh", h.RefreshAdvice)
			adviceGroup.POST("/meal", h.MealIdea)
		}
	}
}
