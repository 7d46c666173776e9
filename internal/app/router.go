package app

import (
	"codeventure_gateway/internal/middleware"
	"codeventure_gateway/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/register", c.auth.Register)
		public.GET("/auth/session", c.auth.Session)

		// 无凭证时回退到内置课程目录
		public.GET("/courses", c.course.GetCourses)
		public.GET("/lessons/:id", c.lesson.GetLesson)
		public.POST("/lessons/:id/validate", c.lesson.ValidateCode)
	}

	// 需要会话的路由
	session := router.Group("/api")
	session.Use(middleware.SessionRequired(a.Store))
	{
		session.POST("/auth/logout", c.auth.Logout)
		session.GET("/search/lessons", c.lesson.SearchLessons)

		session.GET("/users/:id/progress", c.progress.GetUserProgress)
		session.PUT("/progress", c.progress.UpdateLessonProgress)

		session.GET("/users/:id/profile", c.profile.GetProfile)
		session.GET("/users/:id/statistics", c.profile.GetStatistics)
		session.PUT("/users/:id/avatar", c.profile.UpdateAvatar)
		session.PUT("/users/:id/username", c.profile.UpdateUsername)

		session.GET("/achievements", c.achievement.GetAvailable)
		session.GET("/users/:id/achievements", c.achievement.GetForUser)
		session.POST("/users/:id/achievements/check", c.achievement.CheckAndUnlock)
	}

	// 管理员相关接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.SessionRequired(a.Store), middleware.AdminRequired(a.services.auth))
	{
		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)

		admin.POST("/modules", c.course.CreateModule)
		admin.PUT("/modules/:id", c.course.UpdateModule)
		admin.DELETE("/modules/:id", c.course.DeleteModule)

		admin.POST("/lessons", c.lesson.CreateLesson)
		admin.PUT("/lessons/:id", c.lesson.UpdateLesson)
		admin.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		admin.POST("/cache/clear", c.course.ClearCache)
	}
}
