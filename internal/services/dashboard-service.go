package services

import (
	"fmt"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/match"
	"github.com/unipath/counsel-svc/internal/repository"
	"github.com/unipath/counsel-svc/internal/stage"
	"go.uber.org/zap"
)

type DashboardService interface {
	Get(userID uint) (*dto.DashboardResponse, error)
	// CurrentStage derives the journey stage from stored facts and repairs
	// the cached row when it disagrees.
	CurrentStage(userID uint) (string, error)
}

type dashboardService struct {
	profileRepo   repository.ProfileRepository
	shortlistRepo repository.ShortlistRepository
	taskRepo      repository.TaskRepository
	stageRepo     repository.StageRepository
	logger        *zap.Logger
}

func NewDashboardService(
	profileRepo repository.ProfileRepository,
	shortlistRepo repository.ShortlistRepository,
	taskRepo repository.TaskRepository,
	stageRepo repository.StageRepository,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		profileRepo:   profileRepo,
		shortlistRepo: shortlistRepo,
		taskRepo:      taskRepo,
		stageRepo:     stageRepo,
		logger:        logger,
	}
}

func (d *dashboardService) CurrentStage(userID uint) (string, error) {
	hasProfile, err := d.profileRepo.Exists(userID)
	if err != nil {
		return "", err
	}

	var shortlisted int64
	var anyLocked bool
	if hasProfile {
		shortlisted, err = d.shortlistRepo.CountByUser(userID)
		if err != nil {
			return "", err
		}
		anyLocked, err = d.shortlistRepo.AnyLocked(userID)
		if err != nil {
			return "", err
		}
	}

	current := stage.Resolve(hasProfile, int(shortlisted), anyLocked)
	d.reconcileCached(userID, current)
	return current, nil
}

// reconcileCached repairs the persisted stage when it drifts from the value
// derived from facts. Best effort, a write failure only logs.
func (d *dashboardService) reconcileCached(userID uint, current string) {
	cached, err := d.stageRepo.Get(userID)
	if err == nil && cached != nil && cached.CurrentStage == current {
		return
	}
	if err != nil && !helper.IsNotFound(err) {
		d.logger.Warn("stage cache read failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	if err := d.stageRepo.Upsert(userID, current); err != nil {
		d.logger.Warn("stage cache repair failed", zap.Uint("user_id", userID), zap.Error(err))
	}
}

func (d *dashboardService) Get(userID uint) (*dto.DashboardResponse, error) {
	currentStage, err := d.CurrentStage(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		CurrentStage:       currentStage,
		Tasks:              []domain.Task{},
		LockedUniversities: []dto.LockedUniversity{},
	}

	profile, err := d.profileRepo.FindByUserID(userID)
	if err != nil {
		if !helper.IsNotFound(err) {
			return nil, err
		}
		return resp, nil
	}

	resp.ProfileSummary = summarize(profile)
	resp.ProfileStrength = match.Strength(profile)

	tasks, err := d.taskRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		tasks, err = d.seedDefaultTasks(userID)
		if err != nil {
			return nil, err
		}
	}
	resp.Tasks = tasks

	locked, err := d.shortlistRepo.ListLocked(userID)
	if err != nil {
		return nil, err
	}
	for _, e := range locked {
		lu := dto.LockedUniversity{
			ShortlistID:  e.ID,
			UniversityID: e.UniversityID,
			Bucket:       e.Bucket,
		}
		if e.University != nil {
			lu.Name = e.University.Name
			lu.Country = e.University.Country
			if len(e.University.ProgramsOffered) > 0 {
				lu.Program = e.University.ProgramsOffered[0]
			}
		}
		resp.LockedUniversities = append(resp.LockedUniversities, lu)
	}

	return resp, nil
}

// seedDefaultTasks gives a fresh journey its starter checklist.
func (d *dashboardService) seedDefaultTasks(userID uint) ([]domain.Task, error) {
	defaults := []domain.Task{
		{UserID: userID, Title: "Complete Your Profile", Description: "Fill out your academic details to get personalized recommendations.", Category: domain.TaskCategoryGeneral},
		{UserID: userID, Title: "Browse Universities", Description: "Explore universities and filter by your preferences.", Category: domain.TaskCategoryGeneral},
		{UserID: userID, Title: "Shortlist Your Favorites", Description: "Add universities to your shortlist to track them.", Category: domain.TaskCategoryGeneral},
	}
	if err := d.taskRepo.CreateBatch(defaults); err != nil {
		return nil, err
	}
	return d.taskRepo.ListByUser(userID)
}

func summarize(p *domain.StudentProfile) dto.ProfileSummary {
	return dto.ProfileSummary{
		Education:    strings.TrimSpace(p.EducationLevel + " in " + p.Major),
		TargetDegree: p.IntendedDegree,
		Field:        p.FieldOfStudy,
		TargetIntake: p.TargetIntakeYear,
		Countries:    p.PreferredCountries,
		Budget:       fmt.Sprintf("$%.0f - $%.0f", p.BudgetMin, p.BudgetMax),
		GPA:          p.GPA,
	}
}
