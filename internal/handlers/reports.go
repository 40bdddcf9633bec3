package handlers

import (
	"net/http"

	"github.com/JunoAX/housepoints-planner/internal/models"
	"github.com/JunoAX/housepoints-planner/internal/planner"
	"github.com/gin-gonic/gin"
)

// ScoreFairness re-scores an existing week plan against a member list,
// without generating a new plan. Useful for previewing how a manually
// edited plan shifts the weekly shares.
func ScoreFairness(c *gin.Context) {
	var req models.FairnessReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	report := planner.ScoreFairness(req.WeekPlan, req.FamilyMembers)

	c.JSON(http.StatusOK, report)
}
