package controllers

import (
	"net/http"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

type DietController struct {
	Svc *services.DietService
}

func NewDietController(svc *services.DietService) *DietController {
	return &DietController{Svc: svc}
}

func (dc *DietController) Create(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.DietInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diet, err := dc.Svc.AddDiet(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, diet)
}

func (dc *DietController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	if meal := c.Query("meal"); meal != "" {
		diets, err := dc.Svc.ListDietsByMeal(userID, meal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, diets)
		return
	}

	diets, err := dc.Svc.ListDiets(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, diets)
}

func (dc *DietController) Get(c *gin.Context) {
	userID := c.GetUint("userID")
	dietID, ok := idParam(c, "id")
	if !ok {
		return
	}

	diet, err := dc.Svc.GetDiet(userID, dietID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, diet)
}

func (dc *DietController) Update(c *gin.Context) {
	userID := c.GetUint("userID")
	dietID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.DietInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diet, err := dc.Svc.UpdateDiet(userID, dietID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, diet)
}

func (dc *DietController) Delete(c *gin.Context) {
	userID := c.GetUint("userID")
	dietID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := dc.Svc.DeleteDiet(userID, dietID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diet deleted"})
}
