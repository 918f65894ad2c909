package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lms_backend/internal/config"
	"lms_backend/internal/controller"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/security"
	"lms_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user       *repository.UserRepository
	lesson     *repository.LessonRepository
	checkpoint *repository.CheckpointRepository
	quiz       *repository.QuizRepository
	progress   *repository.ProgressRepository
	studyTime  *repository.StudyTimeRepository
	assignment *repository.AssignmentRepository
	question   *repository.AssignmentQuestionRepository
	submission *repository.SubmissionRepository
	calendar   *repository.CalendarRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	lesson     *service.LessonService
	checkpoint *service.CheckpointService
	quiz       *service.QuizService
	progress   *service.ProgressService
	ranking    *service.RankingService
	studyTime  *service.StudyTimeService
	assignment *service.AssignmentService
	submission *service.SubmissionService
	calendar   *service.CalendarService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	lesson     *controller.LessonController
	checkpoint *controller.CheckpointController
	quiz       *controller.QuizController
	progress   *controller.ProgressController
	ranking    *controller.RankingController
	studyTime  *controller.StudyTimeController
	assignment *controller.AssignmentController
	submission *controller.SubmissionController
	calendar   *controller.CalendarController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		lesson:     repository.NewLessonRepository(db),
		checkpoint: repository.NewCheckpointRepository(db),
		quiz:       repository.NewQuizRepository(db),
		progress:   repository.NewProgressRepository(db),
		studyTime:  repository.NewStudyTimeRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		question:   repository.NewAssignmentQuestionRepository(db),
		submission: repository.NewSubmissionRepository(db),
		calendar:   repository.NewCalendarRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.lesson = service.NewLessonService(repos.lesson, storage)
	s.checkpoint = service.NewCheckpointService(repos.checkpoint, repos.lesson)
	s.quiz = service.NewQuizService(repos.quiz, repos.lesson)
	s.progress = service.NewProgressService(repos.progress, repos.lesson)
	s.ranking = service.NewRankingService(
		repos.user,
		repos.progress,
		repos.lesson,
		rdb,
		time.Duration(cfg.Ranking.CacheTTLSeconds)*time.Second,
	)
	s.studyTime = service.NewStudyTimeService(repos.studyTime)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.question)
	s.submission = service.NewSubmissionService(repos.submission, repos.assignment, repos.question)
	s.calendar = service.NewCalendarService(repos.calendar)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		lesson:     controller.NewLessonController(s.lesson, logger.Log),
		checkpoint: controller.NewCheckpointController(s.checkpoint),
		quiz:       controller.NewQuizController(s.quiz),
		progress:   controller.NewProgressController(s.progress),
		ranking:    controller.NewRankingController(s.ranking),
		studyTime:  controller.NewStudyTimeController(s.studyTime),
		assignment: controller.NewAssignmentController(s.assignment),
		submission: controller.NewSubmissionController(s.submission),
		calendar:   controller.NewCalendarController(s.calendar),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	if cfg.RateLimit.MaxRequests > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode == "debug" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("migration failed", zap.Error(err))
		}
		logger.Log.Info("database migrated")

		if err := database.Seed(db); err != nil {
			logger.Log.Fatal("seeding demo accounts failed", zap.Error(err))
		}
		logger.Log.Info("demo accounts seeded",
			zap.String("admin", "admin@edu.com"),
			zap.String("teacher", "teacher@edu.com"),
			zap.String("student", "student@edu.com"))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The leaderboard cache degrades to direct reads without redis.
		logger.Log.Warn("redis unavailable, caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lms-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ApplyConfig picks up the settings that can change without a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.Ranking = cfg.Ranking
	if a.services != nil && a.services.ranking != nil {
		a.services.ranking.CacheTTL = time.Duration(cfg.Ranking.CacheTTLSeconds) * time.Second
	}
	logger.Log.Info("configuration reloaded",
		zap.Int("ranking_cache_ttl_seconds", cfg.Ranking.CacheTTLSeconds))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exited")
}
