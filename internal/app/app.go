package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trueinvest_backend/internal/config"
	"trueinvest_backend/internal/controller"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/pkg/configwatcher"
	"trueinvest_backend/pkg/database"
	"trueinvest_backend/pkg/logger"
	"trueinvest_backend/pkg/monitoring"
	"trueinvest_backend/pkg/security"
	"trueinvest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	goal         *repository.GoalRepository
	goalEvent    *repository.GoalEventRepository
	achievement  *repository.AchievementRepository
	timeEntry    *repository.TimeEntryRepository
	sale         *repository.SaleRepository
	activity     *repository.ActivityRepository
	meeting      *repository.MeetingRepository
	notification *repository.NotificationRepository
	setting      *repository.SettingRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	settings     *service.SettingsService
	ranking      *service.RankingService
	achievement  *service.AchievementService
	goal         *service.GoalService
	attendance   *service.AttendanceService
	meeting      *service.MeetingService
	notification *service.NotificationService
	sale         *service.SaleService
	activity     *service.ActivityService
	admin        *service.AdminService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	goal         *controller.GoalController
	ranking      *controller.RankingController
	attendance   *controller.AttendanceController
	achievement  *controller.AchievementController
	meeting      *controller.MeetingController
	notification *controller.NotificationController
	sale         *controller.SaleController
	activity     *controller.ActivityController
	admin        *controller.AdminController
	settings     *controller.SettingsController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		goal:         repository.NewGoalRepository(db),
		goalEvent:    repository.NewGoalEventRepository(db),
		achievement:  repository.NewAchievementRepository(db),
		timeEntry:    repository.NewTimeEntryRepository(db),
		sale:         repository.NewSaleRepository(db),
		activity:     repository.NewActivityRepository(db),
		meeting:      repository.NewMeetingRepository(db),
		notification: repository.NewNotificationRepository(db),
		setting:      repository.NewSettingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.settings = service.NewSettingsService(repos.setting, s.storage)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.ranking = service.NewRankingService(repos.user, rdb, cfg.Ranking.LeaderboardSize, cfg.Ranking.CacheSeconds)
	s.achievement = service.NewAchievementService(repos.achievement, repos.user, s.ranking, db)
	s.goal = service.NewGoalService(repos.goal, repos.goalEvent, repos.user, s.ranking, s.achievement, db)
	s.attendance = service.NewAttendanceService(repos.timeEntry)
	s.meeting = service.NewMeetingService(repos.meeting, repos.user, db)
	s.notification = service.NewNotificationService(repos.notification)
	s.sale = service.NewSaleService(repos.sale)
	s.activity = service.NewActivityService(repos.activity)
	s.admin = service.NewAdminService(repos.user, s.ranking, db)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user, s.settings),
		goal:         controller.NewGoalController(s.goal),
		ranking:      controller.NewRankingController(s.ranking),
		attendance:   controller.NewAttendanceController(s.attendance),
		achievement:  controller.NewAchievementController(s.achievement),
		meeting:      controller.NewMeetingController(s.meeting),
		notification: controller.NewNotificationController(s.notification),
		sale:         controller.NewSaleController(s.sale),
		activity:     controller.NewActivityController(s.activity),
		admin:        controller.NewAdminController(s.admin),
		settings:     controller.NewSettingsController(s.settings),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("trueinvest-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Config = newCfg
		for _, cb := range app.configCallbacks {
			cb(newCfg)
		}
	})

	return app
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
