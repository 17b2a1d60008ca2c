package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timewise_backend/internal/config"
	"timewise_backend/internal/controller"
	"timewise_backend/internal/repository"
	"timewise_backend/internal/service"
	"timewise_backend/pkg/database"
	"timewise_backend/pkg/logger"
	"timewise_backend/pkg/monitoring"
	"timewise_backend/pkg/security"
	"timewise_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	services *services
}

type repositories struct {
	user        *repository.UserRepository
	task        *repository.TaskRepository
	goal        *repository.GoalRepository
	category    *repository.CategoryRepository
	mode        *repository.ModeRepository
	achievement *repository.AchievementRepository
}

type services struct {
	mail        *service.MailService
	storage     *service.StorageService
	achievement *service.AchievementService
	auth        *service.AuthService
	user        *service.UserService
	task        *service.TaskService
	goal        *service.GoalService
	category    *service.CategoryService
	mode        *service.ModeService
	statistics  *service.StatisticsService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	task        *controller.TaskController
	goal        *controller.GoalController
	category    *controller.CategoryController
	mode        *controller.ModeController
	profile     *controller.ProfileController
	statistics  *controller.StatisticsController
	achievement *controller.AchievementController
	help        *controller.HelpController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		task:        repository.NewTaskRepository(db),
		goal:        repository.NewGoalRepository(db),
		category:    repository.NewCategoryRepository(db),
		mode:        repository.NewModeRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.mail = service.NewMailService(cfg.Mail)
	s.storage = service.NewStorageService(cfg)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.auth = service.NewAuthService(repos.user, s.mail, cfg)
	s.user = service.NewUserService(repos.user)
	s.task = service.NewTaskService(repos.task, repos.category, s.achievement)
	s.goal = service.NewGoalService(repos.goal, s.achievement)
	s.category = service.NewCategoryService(repos.category)
	s.mode = service.NewModeService(repos.mode)
	s.statistics = service.NewStatisticsService(repos.task, repos.category)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		task:        controller.NewTaskController(s.task),
		goal:        controller.NewGoalController(s.goal),
		category:    controller.NewCategoryController(s.category),
		mode:        controller.NewModeController(s.mode),
		profile:     controller.NewProfileController(s.user, s.storage),
		statistics:  controller.NewStatisticsController(s.statistics),
		achievement: controller.NewAchievementController(s.achievement),
		help:        controller.NewHelpController(),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig aplica la porción recargable de la configuración sin
// reiniciar el proceso. Hoy solo el correo admite recarga en caliente.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.mail.Reload(cfg.Mail)
	logger.Log.Info("Configuración de correo recargada")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger inicializado")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("No se pudo inicializar la base de datos", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("timewise-api", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("No se pudo inicializar el trazado", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
