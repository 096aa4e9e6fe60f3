package services

import (
	"context"
	"errors"
	"strings"

	"github.com/unipath/counsel-svc/internal/ai"
	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/repository"
	"go.uber.org/zap"
)

// TaskSuggester drafts a starter task list for a fresh journey.
type TaskSuggester interface {
	InitialTasks(ctx context.Context, name string, p *domain.StudentProfile, stage string) []ai.TaskSuggestion
}

type TaskService interface {
	List(userID uint) ([]domain.Task, error)
	Create(userID uint, input dto.CreateTaskRequest) (*domain.Task, error)
	Complete(userID, taskID uint) error
	Recommended(userID uint) ([]dto.RecommendedTask, error)
	SeedInitial(ctx context.Context, userID uint, name, stage string) error
}

type taskService struct {
	repo          repository.TaskRepository
	profileRepo   repository.ProfileRepository
	shortlistRepo repository.ShortlistRepository
	suggester     TaskSuggester
	logger        *zap.Logger
}

func NewTaskService(
	repo repository.TaskRepository,
	profileRepo repository.ProfileRepository,
	shortlistRepo repository.ShortlistRepository,
	suggester TaskSuggester,
	logger *zap.Logger,
) TaskService {
	return &taskService{
		repo:          repo,
		profileRepo:   profileRepo,
		shortlistRepo: shortlistRepo,
		suggester:     suggester,
		logger:        logger,
	}
}

func (t *taskService) List(userID uint) ([]domain.Task, error) {
	return t.repo.ListByUser(userID)
}

func (t *taskService) Create(userID uint, input dto.CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.TaskCategoryGeneral
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
	}
	if err := t.repo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (t *taskService) Complete(userID, taskID uint) error {
	rows, err := t.repo.Complete(taskID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("task not found")
	}
	return nil
}

// Recommended derives preparation tasks from profile gaps and shortlist exam
// requirements. Nothing here is persisted.
func (t *taskService) Recommended(userID uint) ([]dto.RecommendedTask, error) {
	profile, err := t.profileRepo.FindByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return []dto.RecommendedTask{}, nil
		}
		return nil, err
	}

	recommended := []dto.RecommendedTask{}

	if profile.IeltsToeflStatus != domain.ExamCompleted {
		recommended = append(recommended, dto.RecommendedTask{
			ID:          "ielts_toefl",
			Title:       "Take IELTS/TOEFL Exam",
			Description: "Most universities require English proficiency test scores. Schedule your exam soon.",
			Category:    domain.TaskCategoryExam,
			Priority:    "high",
		})
	}

	if profile.GreGmatStatus != domain.ExamCompleted {
		needsExam, err := t.shortlistRequiresGre(userID)
		if err != nil {
			return nil, err
		}
		if needsExam {
			recommended = append(recommended, dto.RecommendedTask{
				ID:          "gre_gmat",
				Title:       "Take GRE/GMAT Exam",
				Description: "One or more of your shortlisted universities require GRE/GMAT scores.",
				Category:    domain.TaskCategoryExam,
				Priority:    "high",
			})
		}
	}

	if profile.SopStatus != domain.ExamCompleted {
		recommended = append(recommended, dto.RecommendedTask{
			ID:          "sop",
			Title:       "Write Statement of Purpose (SOP)",
			Description: "Draft your SOP highlighting your academic achievements and career goals.",
			Category:    domain.TaskCategoryDocument,
			Priority:    "medium",
		})
	}

	recommended = append(recommended,
		dto.RecommendedTask{
			ID:          "lor",
			Title:       "Collect Letters of Recommendation",
			Description: "Request LORs from professors or supervisors. Most universities require 2-3 letters.",
			Category:    domain.TaskCategoryDocument,
			Priority:    "medium",
		},
		dto.RecommendedTask{
			ID:          "financial",
			Title:       "Prepare Financial Documents",
			Description: "Gather bank statements, sponsor letters, and proof of funds for visa application.",
			Category:    domain.TaskCategoryDocument,
			Priority:    "low",
		},
		dto.RecommendedTask{
			ID:          "transcripts",
			Title:       "Request Official Transcripts",
			Description: "Get official transcripts from your current/previous institutions.",
			Category:    domain.TaskCategoryDocument,
			Priority:    "medium",
		},
	)

	return recommended, nil
}

// SeedInitial creates a starter task list once, when the user has none.
func (t *taskService) SeedInitial(ctx context.Context, userID uint, name, stage string) error {
	count, err := t.repo.CountByUser(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile, err := t.profileRepo.FindByUserID(userID)
	if err != nil && !helper.IsNotFound(err) {
		return err
	}

	var suggestions []ai.TaskSuggestion
	if t.suggester != nil {
		suggestions = t.suggester.InitialTasks(ctx, name, profile, stage)
	}
	if len(suggestions) == 0 {
		return nil
	}

	tasks := make([]domain.Task, 0, len(suggestions))
	for _, s := range suggestions {
		tasks = append(tasks, domain.Task{
			UserID:      userID,
			Title:       s.Title,
			Description: s.Description,
			Category:    domain.TaskCategoryAISuggestion,
		})
	}
	if err := t.repo.CreateBatch(tasks); err != nil {
		t.logger.Warn("seeding initial tasks failed", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (t *taskService) shortlistRequiresGre(userID uint) (bool, error) {
	entries, err := t.shortlistRepo.ListByUser(userID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.University != nil && (e.University.RequiresGre || e.University.RequiresGmat) {
			return true, nil
		}
	}
	return false, nil
}
