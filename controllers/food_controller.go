package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, true
	}
	d, err := time.ParseInLocation("2006-01-02", v, time.Now().Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " date"})
		return time.Time{}, false
	}
	return d, true
}

func (fc *FoodController) Log(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Svc.LogFood(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	from, ok := dateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to")
	if !ok {
		return
	}

	if !from.IsZero() && !to.IsZero() {
		if to.Before(from) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
			return
		}
		foods, err := fc.Svc.ListFoodByDateRange(userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, foods)
		return
	}

	foods, err := fc.Svc.ListFood(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Recent(c *gin.Context) {
	userID := c.GetUint("userID")

	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	foods, err := fc.Svc.ListRecentFood(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	foodID, ok := idParam(c, "id")
	if !ok {
		return
	}

	food, err := fc.Svc.GetFood(userID, foodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	foodID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Svc.UpdateFood(userID, foodID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	foodID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := fc.Svc.DeleteFood(userID, foodID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food log deleted"})
}
