package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/response"
)

var validate = validator.New()

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func attachToken(c *gin.Context, app App, token string) {
	secure := app.Config().Env == "production"
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, token, int(app.Tokens().TTL().Seconds()), "/", "", secure, true)
}

func clearToken(c *gin.Context, app App) {
	secure := app.Config().Env == "production"
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", secure, true)
}

func Signup(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil || validate.Struct(&req) != nil {
			BadRequest(c, app.Logger(), "Name, email and password are required")
			return
		}

		user, err := app.Users().Create(internal.NewUser{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		token, err := app.Tokens().Issue(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		attachToken(c, app, token)

		c.JSON(http.StatusCreated, response.AuthPayload(token, user))
	}
}

func Login(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || validate.Struct(&req) != nil {
			BadRequest(c, app.Logger(), "Email and password are required")
			return
		}

		user, err := app.Users().Authenticate(req.Email, req.Password)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}

		token, err := app.Tokens().Issue(user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err)
			return
		}
		attachToken(c, app, token)

		c.JSON(http.StatusOK, response.AuthPayload(token, user))
	}
}

func Logout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearToken(c, app)
		c.Status(http.StatusNoContent)
	}
}

func Verify(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Payload(auth.CurrentUser(c)))
	}
}
