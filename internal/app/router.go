package app

import (
	"trueinvest_backend/docs"
	"trueinvest_backend/internal/config"
	"trueinvest_backend/internal/middleware"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerBrokerRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/branding", c.settings.Branding)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/forgot-password", c.auth.ForgotPassword)
		public.POST("/reset-password", c.auth.ResetPassword)
	}
}

// registerBrokerRoutes wires everything an authenticated broker can do.
// Admins pass through the same group.
func (a *App) registerBrokerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	rg := router.Group("/api")
	rg.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		rg.GET("/me", c.auth.Me)
		rg.PUT("/profile", c.user.UpdateProfile)
		rg.POST("/profile/photo", c.user.UploadPhoto)

		rg.GET("/goals", c.goal.ListGoals)
		rg.GET("/goals/events", c.goal.ListEvents)
		rg.POST("/goals/:id/complete", c.goal.CompleteGoal)
		rg.POST("/goals/:id/undo", c.goal.UndoGoal)

		rg.GET("/ranking", c.ranking.Leaderboard)
		rg.GET("/ranking/me", c.ranking.MyRank)

		rg.POST("/attendance/clock-in", c.attendance.ClockIn)
		rg.POST("/attendance/clock-out", c.attendance.ClockOut)
		rg.GET("/attendance/today", c.attendance.Today)
		rg.GET("/attendance/history", c.attendance.History)

		rg.GET("/achievements", c.achievement.ListMine)

		rg.GET("/meetings", c.meeting.ListUpcoming)

		rg.GET("/notifications", c.notification.List)
		rg.GET("/notifications/unread", c.notification.UnreadCount)
		rg.POST("/notifications/:id/read", c.notification.MarkRead)
		rg.PUT("/notifications/read-all", c.notification.MarkAllRead)

		rg.GET("/sales", c.sale.ListMine)
		rg.POST("/sales", c.sale.Create)
		rg.PUT("/sales/:id", c.sale.Update)
		rg.DELETE("/sales/:id", c.sale.Delete)

		rg.GET("/activities", c.activity.ListMine)
		rg.POST("/activities", c.activity.Create)
		rg.DELETE("/activities/:id", c.activity.Delete)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id/role", c.admin.UpdateRole)
		admin.POST("/users/:id/reset", c.admin.ResetUserData)
		admin.DELETE("/users/:id", c.admin.DeleteUser)

		admin.GET("/goals", c.goal.ListAllGoals)
		admin.POST("/goals", c.goal.CreateGoal)
		admin.PUT("/goals/:id", c.goal.UpdateGoal)
		admin.DELETE("/goals/:id", c.goal.DeleteGoal)

		admin.POST("/achievements", c.achievement.Create)
		admin.PUT("/achievements/:id", c.achievement.Update)
		admin.DELETE("/achievements/:id", c.achievement.Delete)
		admin.POST("/achievements/:id/grant/:userId", c.achievement.Grant)

		admin.GET("/meetings", c.meeting.ListAll)
		admin.POST("/meetings", c.meeting.Create)
		admin.POST("/meetings/:id/cancel", c.meeting.Cancel)

		admin.GET("/sales", c.sale.ListAll)
		admin.PUT("/sales/:id/status", c.sale.UpdateStatus)

		admin.GET("/activities", c.activity.ListAll)

		admin.PUT("/branding", c.settings.UpdateBranding)
		admin.POST("/branding/upload", c.settings.UploadAsset)
	}
}
