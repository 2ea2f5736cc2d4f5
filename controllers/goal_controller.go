package controllers

import (
	"net/http"
	"time"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Food *services.FoodService
}

func NewGoalController(food *services.FoodService) *GoalController {
	return &GoalController{Food: food}
}

func (gc *GoalController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

type GoalInput struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
}

func (gc *GoalController) Update(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoals(userID, input.Calories, input.Protein, input.Fat, input.Carbs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Progress reports the day's consumed totals against the stored goals.
// Defaults to today; override with ?date=YYYY-MM-DD.
func (gc *GoalController) Progress(c *gin.Context) {
	userID := c.GetUint("userID")

	now := time.Now()
	date := now
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = d
	}

	out, err := services.GetGoalsAndProgress(gc.Food, userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
