package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
)

func ListLogs(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		logs, err := app.Logs().ListLogs(user.ID, limit)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

func CreateLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		// An empty body is a valid (fully defaulted) log entry.
		var payload internal.LogPayload
		if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
			BadRequest(c, app.Logger(), "Invalid JSON payload")
			return
		}

		log, err := app.Logs().CreateLog(user.ID, payload)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		c.JSON(http.StatusCreated, log)
	}
}
