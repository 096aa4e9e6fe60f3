package services

import (
	"errors"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/match"
	"github.com/unipath/counsel-svc/internal/repository"
	"go.uber.org/zap"
)

type ProfileService interface {
	Save(userID uint, input dto.ProfileInput) (*domain.StudentProfile, error)
	Get(userID uint) (*domain.StudentProfile, error)
	Strength(userID uint) (*match.ProfileStrength, error)
}

type profileService struct {
	repo      repository.ProfileRepository
	stageRepo repository.StageRepository
	logger    *zap.Logger
}

func NewProfileService(
	repo repository.ProfileRepository,
	stageRepo repository.StageRepository,
	logger *zap.Logger,
) ProfileService {
	return &profileService{
		repo:      repo,
		stageRepo: stageRepo,
		logger:    logger,
	}
}

func (p *profileService) Save(userID uint, input dto.ProfileInput) (*domain.StudentProfile, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	if input.GPA < 0 || input.GPA > 4.0 {
		return nil, errors.New("gpa must be between 0 and 4.0")
	}
	if input.BudgetMin < 0 || input.BudgetMax < 0 {
		return nil, errors.New("budget cannot be negative")
	}
	if input.BudgetMax > 0 && input.BudgetMin > input.BudgetMax {
		return nil, errors.New("budget_min cannot exceed budget_max")
	}

	profile := &domain.StudentProfile{
		UserID:             userID,
		EducationLevel:     strings.TrimSpace(input.EducationLevel),
		Major:              strings.TrimSpace(input.Major),
		GraduationYear:     input.GraduationYear,
		GPA:                input.GPA,
		IntendedDegree:     strings.TrimSpace(input.IntendedDegree),
		FieldOfStudy:       strings.TrimSpace(input.FieldOfStudy),
		TargetIntakeYear:   input.TargetIntakeYear,
		PreferredCountries: input.PreferredCountries,
		BudgetMin:          input.BudgetMin,
		BudgetMax:          input.BudgetMax,
		IeltsToeflStatus:   examStatusOrDefault(input.IeltsToeflStatus),
		IeltsToeflScore:    input.IeltsToeflScore,
		GreGmatStatus:      examStatusOrDefault(input.GreGmatStatus),
		GreGmatScore:       input.GreGmatScore,
		SopStatus:          examStatusOrDefault(input.SopStatus),
	}
	profile.IsComplete = profileComplete(profile)

	if err := p.repo.Upsert(profile); err != nil {
		return nil, err
	}

	if profile.IsComplete {
		// Cache only. Readers derive the real stage from stored facts.
		if err := p.stageRepo.Upsert(userID, domain.StageProfileReady); err != nil {
			p.logger.Warn("stage cache update failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}

	return profile, nil
}

func (p *profileService) Get(userID uint) (*domain.StudentProfile, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	return p.repo.FindByUserID(userID)
}

func (p *profileService) Strength(userID uint) (*match.ProfileStrength, error) {
	profile, err := p.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	s := match.Strength(profile)
	return &s, nil
}

// profileComplete mirrors the onboarding gate: the academic and goal fields
// must all be filled before the journey can leave ONBOARDING.
func profileComplete(p *domain.StudentProfile) bool {
	return p.EducationLevel != "" &&
		p.Major != "" &&
		p.GraduationYear > 0 &&
		p.GPA > 0 &&
		p.IntendedDegree != "" &&
		p.FieldOfStudy != "" &&
		p.TargetIntakeYear > 0 &&
		len(p.PreferredCountries) > 0 &&
		p.BudgetMax > 0
}

func examStatusOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.ExamNotStarted
	}
	return s
}
