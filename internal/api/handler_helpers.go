package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/response"
)

// Public messages per error code, so internal detail never reaches the
// client. Anything unrecognized collapses to a generic 500.
var publicMessages = map[string]string{
	internal.CodeEmailInUse:         "Email address already in use",
	internal.CodeInvalidCredentials: "Invalid credentials",
}

// HandleError maps a repository or storage error onto the wire. The
// AppError code decides the status; string matching never happens here.
func HandleError(c *gin.Context, logger internal.Logger, err error) {
	requestID := c.GetString("request_id")

	var app *internal.AppError
	if errors.As(err, &app) {
		msg, ok := publicMessages[app.Code]
		if !ok {
			msg = app.Message
		}
		if app.Status >= http.StatusInternalServerError {
			logger.Errorf("[request_id=%s] %v", requestID, err)
			msg = "Something went wrong"
		} else {
			logger.Warnf("[request_id=%s] %v", requestID, err)
		}
		c.JSON(app.Status, response.Error(msg))
		return
	}

	logger.Errorf("[request_id=%s] unhandled error: %v", requestID, err)
	c.JSON(http.StatusInternalServerError, response.Error("Something went wrong"))
}

// BadRequest reports a caller mistake with a route-specific message.
func BadRequest(c *gin.Context, logger internal.Logger, msg string) {
	logger.Warnf("[request_id=%s] bad request: %s", c.GetString("request_id"), msg)
	c.JSON(http.StatusBadRequest, response.Error(msg))
}
