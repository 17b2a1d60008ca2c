package app

import (
	"timewise_backend/docs"
	"timewise_backend/internal/config"
	"timewise_backend/internal/middleware"
	"timewise_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/register", c.auth.Register)
		auth.POST("/login", c.auth.Login)
		auth.POST("/recover-password", c.auth.RecoverPassword)
		auth.POST("/reset-password", c.auth.ResetPassword)
	}

	help := router.Group("/ayuda")
	{
		help.GET("", c.help.ListTutorials)
		help.POST("/soporte", c.help.ReportProblem)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	tasks := rg.Group("/tareas")
	{
		tasks.POST("", c.task.CreateTask)
		tasks.GET("", c.task.ListTasks)
		tasks.GET("/filtrar", c.task.FilterTasks)
		tasks.GET("/:id", c.task.GetTask)
		tasks.PUT("/:id", c.task.UpdateTask)
		tasks.DELETE("/:id", c.task.DeleteTask)
	}

	goals := rg.Group("/metas")
	{
		goals.POST("", c.goal.CreateGoal)
		goals.GET("", c.goal.ListGoals)
		goals.GET("/:id", c.goal.GetGoal)
		goals.PUT("/:id", c.goal.UpdateGoal)
		goals.PUT("/:id/progreso", c.goal.UpdateProgress)
		goals.DELETE("/:id", c.goal.DeleteGoal)
	}

	categories := rg.Group("/categorias")
	{
		categories.POST("", c.category.CreateCategory)
		categories.GET("", c.category.ListCategories)
		categories.GET("/:id", c.category.GetCategory)
		categories.PUT("/:id", c.category.UpdateCategory)
		categories.DELETE("/:id", c.category.DeleteCategory)
	}

	modes := rg.Group("/modos")
	{
		modes.GET("", c.mode.ListModes)
		modes.GET("/mis-modos", c.mode.ListActiveModes)
		modes.POST("/activar", c.mode.ActivateMode)
		modes.DELETE("/desactivar/:id", c.mode.DeactivateMode)
	}

	profile := rg.Group("/perfil")
	{
		profile.GET("", c.profile.GetProfile)
		profile.PUT("", c.profile.UpdateProfile)
		profile.PUT("/cambiar-contrasena", c.profile.ChangePassword)
		profile.PUT("/cambiar-correo", c.profile.ChangeEmail)
		profile.POST("/foto", c.profile.UploadPhoto)
	}

	statistics := rg.Group("/estadisticas")
	{
		statistics.GET("", c.statistics.GetStatistics)
		statistics.GET("/grafico", c.statistics.GetChart)
	}

	rg.GET("/logros", c.achievement.ListAchievements)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/admin/usuarios")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.GET("", c.user.ListUsers)
		admin.POST("", c.user.CreateUser)
		admin.GET("/:id", c.user.GetUser)
		admin.PUT("/:id", c.user.UpdateUser)
		admin.DELETE("/:id", c.user.DeleteUser)
	}
}
