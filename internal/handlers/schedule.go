package handlers

import (
	"net/http"

	"github.com/JunoAX/housepoints-planner/internal/models"
	"github.com/JunoAX/housepoints-planner/internal/observability"
	"github.com/JunoAX/housepoints-planner/internal/planner"
	"github.com/gin-gonic/gin"
)

// GenerateSchedule runs the offline fallback scheduler over the posted week
// context and returns the seven-day plan with its fairness report.
func GenerateSchedule(c *gin.Context) {
	var week models.WeekContext
	if err := c.ShouldBindJSON(&week); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan := planner.GenerateWeekPlan(week)

	assigned := 0
	for _, day := range plan.WeekPlan {
		assigned += len(day.Tasks)
	}
	observability.RecordPlanGenerated(assigned)

	c.JSON(http.StatusOK, plan)
}
