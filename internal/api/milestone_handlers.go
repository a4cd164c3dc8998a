package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/response"
)

func ListMilestones(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		if _, err := app.Milestones().EnsureDefaultMilestones(user.ID); err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		milestones, err := app.Milestones().ListMilestones(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"milestones": milestones})
	}
}

func UpdateMilestone(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		milestoneID := c.Param("milestoneId")

		var updates internal.MilestoneUpdates
		if err := c.ShouldBindJSON(&updates); err != nil && !errors.Is(err, io.EOF) {
			BadRequest(c, app.Logger(), "Invalid JSON payload")
			return
		}

		updated, err := app.Milestones().UpdateMilestone(user.ID, milestoneID, updates)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		if updated == nil {
			c.JSON(http.StatusNotFound, response.Error("Milestone not found"))
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
