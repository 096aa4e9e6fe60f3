package api

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/unipath/counsel-svc/config"
	"github.com/unipath/counsel-svc/infra/queue"
	"github.com/unipath/counsel-svc/internal/actions"
	"github.com/unipath/counsel-svc/internal/ai"
	"github.com/unipath/counsel-svc/internal/ai/gemini"
	"github.com/unipath/counsel-svc/internal/api/rest/handlers"
	"github.com/unipath/counsel-svc/internal/api/rest/middleware"
	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/repository"
	"github.com/unipath/counsel-svc/internal/services"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config, logger *zap.Logger) {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	logger.Info("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260515

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.StudentProfile{},
		&domain.University{},
		&domain.ShortlistEntry{},
		&domain.UserStage{},
		&domain.Task{},
		&domain.ChatMessage{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	logger.Info("migration successful")

	seedUniversities(db, logger)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var generator ai.ContentGenerator
	if cfg.GeminiAPIKey != "" {
		gem, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini init error: %v", err)
		}
		generator = gem
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI features degrade to rule-based behavior")
	}

	matcher := ai.NewMatcher(generator, logger)
	counsellor := ai.NewCounsellor(generator, logger)
	planner := ai.NewTaskPlanner(generator, logger)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	shortlistRepo := repository.NewShortlistRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	stageRepo := repository.NewStageRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, kafkaProducer, authHelper, logger)
	profileSvc := services.NewProfileService(profileRepo, stageRepo, logger)
	recSvc := services.NewRecommendationService(universityRepo, profileRepo, shortlistRepo)
	shortlistSvc := services.NewShortlistService(
		shortlistRepo, universityRepo, profileRepo, taskRepo, userRepo,
		matcher, kafkaProducer, logger,
	)
	taskSvc := services.NewTaskService(taskRepo, profileRepo, shortlistRepo, planner, logger)
	dashboardSvc := services.NewDashboardService(profileRepo, shortlistRepo, taskRepo, stageRepo, logger)

	executor := services.NewActionExecutor(universityRepo, shortlistRepo, taskRepo)
	pipeline := actions.NewPipeline(executor, logger)
	counselSvc := services.NewCounselService(
		userRepo, profileRepo, chatRepo, dashboardSvc,
		counsellor, pipeline, logger,
	)
	// ---------- Handlers ----------
	api := app.Group("/api")
	protected := app.Group("/api", middleware.AuthMiddleware(authHelper))

	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(api, protected)
	handlers.NewProfileHandler(profileSvc, taskSvc, userSvc).SetupRoutes(protected)
	handlers.NewUniversityHandler(recSvc, shortlistSvc).SetupRoutes(protected)
	handlers.NewShortlistHandler(shortlistSvc).SetupRoutes(protected)
	handlers.NewTaskHandler(taskSvc).SetupRoutes(protected)
	handlers.NewDashboardHandler(dashboardSvc).SetupRoutes(protected)
	handlers.NewChatHandler(counselSvc).SetupRoutes(protected)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	logger.Info("listening", zap.String("addr", cfg.ServerPort))
	log.Fatal(app.Listen(cfg.ServerPort))
}

// seedUniversities gives a fresh database a starter catalog so discovery
// works before an admin imports real data.
func seedUniversities(db *gorm.DB, logger *zap.Logger) {
	var count int64
	if err := db.Model(&domain.University{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	ranking := func(n int) *int { return &n }
	gpa := func(f float64) *float64 { return &f }

	seeds := []domain.University{
		{
			Name: "University of Toronto", Country: "Canada", City: "Toronto",
			Ranking: ranking(21), AcceptanceRate: 43,
			TuitionMin: 35000, TuitionMax: 45000, LivingCostYearly: 15000,
			MinGPA: gpa(3.0), MinIelts: gpa(6.5),
			ProgramsOffered: []string{"Computer Science", "Engineering", "Business"},
			HasScholarships: true, ScholarshipTypes: []string{"Merit-based", "International"},
		},
		{
			Name: "Technical University of Munich", Country: "Germany", City: "Munich",
			Ranking: ranking(37), AcceptanceRate: 8,
			TuitionMin: 0, TuitionMax: 3000, LivingCostYearly: 12000,
			MinGPA: gpa(3.0), MinIelts: gpa(6.5), RequiresGre: true,
			ProgramsOffered: []string{"Computer Science", "Engineering", "Data Science"},
			HasScholarships: true, ScholarshipTypes: []string{"DAAD"},
		},
		{
			Name: "University of Melbourne", Country: "Australia", City: "Melbourne",
			Ranking: ranking(14), AcceptanceRate: 70,
			TuitionMin: 30000, TuitionMax: 42000, LivingCostYearly: 18000,
			MinGPA: gpa(2.8), MinIelts: gpa(6.5),
			ProgramsOffered: []string{"Business", "Medicine", "Computer Science"},
			HasScholarships: true, ScholarshipTypes: []string{"Merit-based"},
		},
		{
			Name: "National University of Singapore", Country: "Singapore", City: "Singapore",
			Ranking: ranking(8), AcceptanceRate: 5,
			TuitionMin: 20000, TuitionMax: 35000, LivingCostYearly: 14000,
			MinGPA: gpa(3.5), MinIelts: gpa(7.0), RequiresGre: true,
			ProgramsOffered: []string{"Computer Science", "Data Science", "Engineering"},
			HasScholarships: true, ScholarshipTypes: []string{"Merit-based", "Need-based"},
		},
		{
			Name: "University of Manchester", Country: "UK", City: "Manchester",
			Ranking: ranking(32), AcceptanceRate: 56,
			TuitionMin: 25000, TuitionMax: 35000, LivingCostYearly: 14000,
			MinGPA: gpa(2.8), MinIelts: gpa(6.0),
			ProgramsOffered: []string{"Business", "Computer Science", "Engineering"},
			HasScholarships: false,
		},
		{
			Name: "Arizona State University", Country: "USA", City: "Tempe",
			Ranking: ranking(179), AcceptanceRate: 88,
			TuitionMin: 28000, TuitionMax: 32000, LivingCostYearly: 13000,
			MinGPA: gpa(2.5), MinIelts: gpa(6.0),
			ProgramsOffered: []string{"Computer Science", "Business", "Engineering"},
			HasScholarships: true, ScholarshipTypes: []string{"Merit-based"},
		},
	}

	if err := db.Create(&seeds).Error; err != nil {
		logger.Warn("university seed failed", zap.Error(err))
		return
	}
	logger.Info("seeded starter university catalog", zap.Int("count", len(seeds)))
}
