package controllers

import (
	"net/http"
	"strconv"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")

	limit := 20
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	alerts, err := services.ListAlerts(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}
