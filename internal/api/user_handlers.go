package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/response"
	"github.com/yourname/befree/internal/storage"
)

type ProfileRequest struct {
	Name          *string `json:"name"`
	Username      *string `json:"username"` // legacy alias for name
	Email         *string `json:"email"`
	AddictionType *string `json:"addictionType"`
	QuitDate      *string `json:"quitDate"`
}

type PasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func UpdateProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		var req ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			BadRequest(c, app.Logger(), "Invalid JSON payload")
			return
		}

		name := req.Name
		if name == nil {
			name = req.Username
		}

		updated, err := app.Users().UpdateProfile(user.ID, internal.ProfileUpdates{
			Name:          name,
			Email:         req.Email,
			AddictionType: req.AddictionType,
			QuitDate:      req.QuitDate,
		})
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		if updated == nil {
			c.JSON(http.StatusNotFound, response.Error("User not found"))
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func UpdatePassword(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)

		var req PasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
			BadRequest(c, app.Logger(), "Current password and new password are required")
			return
		}

		if _, err := app.Users().UpdatePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
			if internal.CodeOf(err) == internal.CodeInvalidCredentials {
				c.JSON(http.StatusUnauthorized, response.Error("Current password is incorrect"))
				return
			}
			HandleError(c, app.Logger(), err)
			return
		}

		fresh, err := app.Users().FindByID(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Password updated successfully",
			"payload": storage.Sanitize(fresh),
		})
	}
}
