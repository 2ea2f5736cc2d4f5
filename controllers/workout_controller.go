package controllers

import (
	"net/http"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

func CreateWorkout(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.CreateWorkout(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workout)
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	workouts, err := services.ListWorkouts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workouts)
}

func UpdateWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	workoutID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.UpdateWorkout(userID, workoutID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workout)
}

func DeleteWorkout(c *gin.Context) {
	userID := c.GetUint("userID")
	workoutID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteWorkout(userID, workoutID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}
