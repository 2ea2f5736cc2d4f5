package controllers

import (
	"net/http"
	"strconv"

	"github.com/DahlGitHub/tracker/services"

	"github.com/gin-gonic/gin"
)

func LogSchedule(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sched, err := services.LogSchedule(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sched)
}

func ListSchedules(c *gin.Context) {
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
		views, err := services.ListSchedulesByDateRange(userID, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := services.ListSchedules(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

func RecentSchedules(c *gin.Context) {
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

	views, err := services.ListRecentSchedules(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

func UpdateSchedule(c *gin.Context) {
	userID := c.GetUint("userID")
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sched, err := services.UpdateSchedule(userID, scheduleID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sched)
}

func DeleteSchedule(c *gin.Context) {
	userID := c.GetUint("userID")
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteSchedule(userID, scheduleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted"})
}
