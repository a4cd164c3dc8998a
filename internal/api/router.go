package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal/auth"
	"github.com/yourname/befree/internal/response"
)

// NewRouter wires the full route surface onto a gin engine.
func NewRouter(app App) *gin.Engine {
	if app.Config().Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogMiddleware(app.Logger()))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{app.Config().ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "BeFree API", "status": "online"})
	})

	authRequired := auth.Required(app.Tokens(), app.Users(), app.Logger())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", Signup(app))
	authGroup.POST("/login", Login(app))
	authGroup.POST("/logout", Logout(app))
	authGroup.GET("/verify", authRequired, Verify(app))

	users := api.Group("/users", authRequired)
	users.PATCH("/me", UpdateProfile(app))
	users.PATCH("/me/password", UpdatePassword(app))

	logs := api.Group("/logs", authRequired)
	logs.GET("", ListLogs(app))
	logs.POST("", CreateLog(app))

	milestones := api.Group("/milestones", authRequired)
	milestones.GET("", ListMilestones(app))
	milestones.PATCH("/:milestoneId", UpdateMilestone(app))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Error("Route not found"))
	})

	return r
}
