package app

import (
	"mindwell_backend/docs"
	"mindwell_backend/internal/config"
	"mindwell_backend/internal/middleware"
	"mindwell_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 测评题目和即时评估对游客开放，结果不保存
		public.GET("/quiz/questions", c.quiz.GetQuestions)
		public.POST("/quiz/evaluate", c.quiz.Evaluate)

		// 推荐资源和助眠音频无需登录
		public.GET("/resources", c.resource.GetRecommendations)
		public.GET("/sounds", c.resource.GetSounds)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		quiz := authGroup.Group("/quiz")
		{
			quiz.POST("/results", c.quiz.Submit)
			quiz.GET("/results", c.quiz.History)
			quiz.GET("/results/:id", c.quiz.GetResult)
			quiz.PUT("/results/:id/notes", c.quiz.UpdateNotes)
			quiz.DELETE("/results/:id", c.quiz.Delete)
			quiz.GET("/stats", c.quiz.GetStats)
		}
	}
}
