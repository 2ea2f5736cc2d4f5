package routes

import (
	"github.com/DahlGitHub/tracker/controllers"
	"github.com/DahlGitHub/tracker/middlewares"
	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	dietSvc *services.DietService,
	foodSvc *services.FoodService,
	dashSvc *services.DashboardService,
	hub *services.RealtimeHub,
	push *services.PushService,
) *gin.Engine {
	r := gin.Default()

	dietCtl := controllers.NewDietController(dietSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	goalCtl := controllers.NewGoalController(foodSvc)
	dashCtl := controllers.NewDashboardController(dashSvc)
	rtCtl := controllers.NewRealtimeController(hub)
	devCtl := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a valid token.
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())

	user := api.Group("/user")
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
	}

	products := api.Group("/products")
	{
		products.POST("", controllers.CreateProduct)
		products.GET("", controllers.ListProducts)
		products.PUT("/:id", controllers.UpdateProduct)
		products.DELETE("/:id", controllers.DeleteProduct)
	}

	diets := api.Group("/diets")
	{
		diets.POST("", dietCtl.Create)
		diets.GET("", dietCtl.List)
		diets.GET("/:id", dietCtl.Get)
		diets.PUT("/:id", dietCtl.Update)
		diets.DELETE("/:id", dietCtl.Delete)
	}

	food := api.Group("/food")
	{
		food.POST("", foodCtl.Log)
		food.GET("", foodCtl.List)
		food.GET("/recent", foodCtl.Recent)
		food.GET("/:id", foodCtl.Get)
		food.PUT("/:id", foodCtl.Update)
		food.DELETE("/:id", foodCtl.Delete)
	}

	goals := api.Group("/goals")
	{
		goals.GET("", goalCtl.Get)
		goals.PUT("", goalCtl.Update)
		goals.GET("/progress", goalCtl.Progress)
	}

	workouts := api.Group("/workouts")
	{
		workouts.POST("", controllers.CreateWorkout)
		workouts.GET("", controllers.ListWorkouts)
		workouts.PUT("/:id", controllers.UpdateWorkout)
		workouts.DELETE("/:id", controllers.DeleteWorkout)
	}

	schedules := api.Group("/schedules")
	{
		schedules.POST("", controllers.LogSchedule)
		schedules.GET("", controllers.ListSchedules)
		schedules.GET("/recent", controllers.RecentSchedules)
		schedules.PUT("/:id", controllers.UpdateSchedule)
		schedules.DELETE("/:id", controllers.DeleteSchedule)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/monthly-logs", dashCtl.MonthlyLogs)
		dashboard.GET("/intake-trend", dashCtl.IntakeTrend)
		dashboard.GET("/muscle-radar", dashCtl.MuscleRadar)
		dashboard.GET("/recent-food", dashCtl.RecentFood)
	}

	api.GET("/alerts", controllers.ListAlerts)
	api.POST("/devices", devCtl.Register)
	api.GET("/ws", rtCtl.EventsWS)

	return r
}
