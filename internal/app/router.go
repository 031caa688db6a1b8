package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	a.registerPublicRoutes(router, c, cfg)
	a.registerStudentRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

// registerPublicRoutes wires the routes visitors can hit without a token.
// The player content and lecture endpoints use optional auth: an anonymous
// caller gets the preview-only view, an enrolled one the full course.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/courses", c.catalog.ListCourses)
		public.GET("/courses/slug/:slug", c.catalog.GetCourse)
		public.GET("/courses/:id/reviews", c.catalog.ListReviews)
		public.GET("/certificates/:number", c.enrollment.VerifyCertificate)

		optional := public.Group("/")
		optional.Use(middleware.TryAuthMiddleware(cfg))
		{
			optional.GET("/courses/:id/overview", c.player.GetOverview)
			optional.GET("/courses/:id/content", c.player.GetContent)
			optional.GET("/courses/:id/lectures/:lectureId", c.player.GetLecture)
		}
	}
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	student := router.Group("/api")
	student.Use(middleware.AuthMiddleware(cfg))
	{
		student.GET("/me", c.auth.Me)
		student.GET("/my-courses", c.enrollment.MyCourses)

		student.POST("/courses/:id/enroll", c.enrollment.Enroll)
		student.GET("/courses/:id/certificate", c.enrollment.Certificate)
		student.POST("/courses/:id/reviews", c.catalog.AddReview)

		student.POST("/courses/:id/lectures/:lectureId/progress", c.player.SaveProgress)
		student.POST("/courses/:id/lectures/:lectureId/complete", c.player.MarkComplete)

		student.POST("/courses/:id/lectures/:lectureId/notes", c.note.Create)
		student.GET("/notes", c.note.List)
		student.PUT("/notes/:id", c.note.Update)
		student.DELETE("/notes/:id", c.note.Delete)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Instructor, model.Admin))
	{
		admin.POST("/courses", c.content.CreateCourse)
		admin.POST("/courses/:id/sections", c.content.CreateSection)
		admin.POST("/sections/:sectionId/lectures", c.content.CreateLecture)
		admin.POST("/lectures/:lectureId/video", c.content.UploadVideo)
	}
}
