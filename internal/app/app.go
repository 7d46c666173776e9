package app

import (
	"codeventure_gateway/internal/config"
	"codeventure_gateway/internal/controller"
	"codeventure_gateway/internal/credential"
	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/service"
	"codeventure_gateway/pkg/configwatcher"
	"codeventure_gateway/pkg/database"
	"codeventure_gateway/pkg/logger"
	"codeventure_gateway/pkg/monitoring"
	"codeventure_gateway/pkg/security"
	"codeventure_gateway/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Store           *credential.Store
	Gateway         *gateway.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type services struct {
	auth        *service.AuthService
	lesson      *service.LessonService
	validation  *service.ValidationService
	progress    *service.ProgressService
	profile     *service.ProfileService
	achievement *service.AchievementService
}

type controllers struct {
	auth        *controller.AuthController
	course      *controller.CourseController
	lesson      *controller.LessonController
	progress    *controller.ProgressController
	profile     *controller.ProfileController
	achievement *controller.AchievementController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initServices(inv gateway.Invoker, store *credential.Store) *services {
	return &services{
		auth:        service.NewAuthService(inv, store),
		lesson:      service.NewLessonService(inv, store),
		validation:  service.NewValidationService(inv, store),
		progress:    service.NewProgressService(inv, store),
		profile:     service.NewProfileService(inv, store),
		achievement: service.NewAchievementService(inv, store),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		course:      controller.NewCourseController(s.lesson),
		lesson:      controller.NewLessonController(s.lesson, s.validation),
		progress:    controller.NewProgressController(s.progress),
		profile:     controller.NewProfileController(s.profile),
		achievement: controller.NewAchievementController(s.achievement),
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
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) watchConfig(configFile string) {
	go configwatcher.WatchConfig(configFile, func(cfg *config.Config) {
		logger.Log.Info("config reloaded", zap.String("gateway", cfg.Gateway.BaseURL))
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to open local database", zap.Error(err))
	}

	store, err := credential.NewStore(db)
	if err != nil {
		logger.Log.Fatal("Failed to initialize credential store", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Store:   store,
		Gateway: gateway.NewClient(&cfg.Gateway),
	}

	svcs := app.initServices(app.Gateway, store)
	app.services = svcs
	ctrls := app.initControllers(svcs, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codeventure-gateway", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls)
	app.watchConfig("configs/config.yaml")

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Gateway running on port %s", a.Config.Server.Port)
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
