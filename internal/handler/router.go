package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuslab/printbooth/internal/middleware"
	"github.com/campuslab/printbooth/internal/model"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Manager   *ManagerHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	public := api.Group("")
	public.Use(middleware.RateLimit(10, time.Minute))
	public.POST("/auth/signup", deps.Auth.Signup)
	public.POST("/auth/resend-code", deps.Auth.ResendCode)
	public.POST("/auth/login", deps.Auth.Login)

	managerGroup := api.Group("/manager")
	managerGroup.Use(
		middleware.Auth(deps.JWTSecret),
		middleware.RequireRole(model.RoleBoothManager),
	)
	managerGroup.GET("/profile", deps.Manager.Profile)
	managerGroup.PUT("/paper", deps.Manager.ReloadPaper)
	managerGroup.PUT("/active", deps.Manager.SetActive)
}
