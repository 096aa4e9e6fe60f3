package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/interfaces"
	"github.com/unipath/counsel-svc/internal/match"
	"github.com/unipath/counsel-svc/internal/repository"
	"go.uber.org/zap"
)

// maxLockedTotal caps final choices across all buckets.
const maxLockedTotal = 4

var (
	ErrAlreadyShortlisted = errors.New("university already in shortlist")
	ErrEntryLocked        = errors.New("entry is locked")
	ErrLockLimitReached   = errors.New("you can only lock a maximum of 4 universities in total")
)

// MatchOracle evaluates one profile/university pair through the AI model.
// A failed call comes back as a sentinel result, never an error.
type MatchOracle interface {
	Evaluate(ctx context.Context, name string, p *domain.StudentProfile, u *domain.University) match.Result
}

type ShortlistService interface {
	List(userID uint) (*dto.ShortlistResponse, error)
	Add(userID uint, input dto.AddToShortlistRequest) (*domain.ShortlistEntry, error)
	Remove(userID, shortlistID uint) error
	MoveBucket(userID, shortlistID uint, bucket string) error
	ToggleLock(userID, shortlistID uint) (bool, error)
	Match(ctx context.Context, userID, universityID uint) (*match.Result, error)
}

type shortlistService struct {
	repo           repository.ShortlistRepository
	universityRepo repository.UniversityRepository
	profileRepo    repository.ProfileRepository
	taskRepo       repository.TaskRepository
	userRepo       repository.UserRepository
	oracle         MatchOracle
	producer       interfaces.ProducerHandler
	logger         *zap.Logger
}

func NewShortlistService(
	repo repository.ShortlistRepository,
	universityRepo repository.UniversityRepository,
	profileRepo repository.ProfileRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	oracle MatchOracle,
	producer interfaces.ProducerHandler,
	logger *zap.Logger,
) ShortlistService {
	return &shortlistService{
		repo:           repo,
		universityRepo: universityRepo,
		profileRepo:    profileRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		oracle:         oracle,
		producer:       producer,
		logger:         logger,
	}
}

func (s *shortlistService) List(userID uint) (*dto.ShortlistResponse, error) {
	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ShortlistResponse{
		Dream:  []dto.ShortlistItem{},
		Target: []dto.ShortlistItem{},
		Safe:   []dto.ShortlistItem{},
	}

	for _, e := range entries {
		item := dto.ShortlistItem{
			ShortlistID:  e.ID,
			UniversityID: e.UniversityID,
			University:   e.University,
			Bucket:       e.Bucket,
			IsLocked:     e.IsLocked,
			WhyFits:      e.WhyFits,
			Risks:        e.Risks,
			AddedAt:      e.CreatedAt.Format(time.RFC3339),
		}
		switch e.Bucket {
		case domain.BucketDream:
			resp.Dream = append(resp.Dream, item)
		case domain.BucketSafe:
			resp.Safe = append(resp.Safe, item)
		default:
			resp.Target = append(resp.Target, item)
		}
	}

	resp.Counts = dto.ShortlistCounts{
		Dream:  len(resp.Dream),
		Target: len(resp.Target),
		Safe:   len(resp.Safe),
		Total:  len(entries),
	}
	return resp, nil
}

func (s *shortlistService) Add(userID uint, input dto.AddToShortlistRequest) (*domain.ShortlistEntry, error) {
	if input.UniversityID == 0 {
		return nil, errors.New("university_id is required")
	}
	bucket := input.Bucket
	if bucket == "" {
		bucket = domain.BucketTarget
	}
	if !domain.ValidBucket(bucket) {
		return nil, errors.New("bucket must be Dream, Target or Safe")
	}

	if _, err := s.universityRepo.FindByID(input.UniversityID); err != nil {
		if helper.IsNotFound(err) {
			return nil, errors.New("university not found")
		}
		return nil, err
	}

	entry := &domain.ShortlistEntry{
		UserID:       userID,
		UniversityID: input.UniversityID,
		Bucket:       bucket,
		WhyFits:      input.WhyFits,
		Risks:        input.Risks,
	}
	if err := s.repo.Create(entry); err != nil {
		if helper.IsDuplicateEntry(err) {
			return nil, ErrAlreadyShortlisted
		}
		return nil, err
	}
	return entry, nil
}

func (s *shortlistService) Remove(userID, shortlistID uint) error {
	rows, err := s.repo.Delete(shortlistID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Either missing or locked. Tell the caller which.
		if entry, findErr := s.repo.FindByID(shortlistID, userID); findErr == nil && entry != nil {
			return ErrEntryLocked
		}
		return errors.New("shortlist item not found")
	}
	return nil
}

func (s *shortlistService) MoveBucket(userID, shortlistID uint, bucket string) error {
	if !domain.ValidBucket(bucket) {
		return errors.New("bucket must be Dream, Target or Safe")
	}
	rows, err := s.repo.UpdateBucket(shortlistID, userID, bucket)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("shortlist item not found or locked")
	}
	return nil
}

func (s *shortlistService) ToggleLock(userID, shortlistID uint) (bool, error) {
	entry, err := s.repo.FindByID(shortlistID, userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return false, errors.New("shortlist item not found")
		}
		return false, err
	}

	newStatus := !entry.IsLocked
	if newStatus {
		locked, err := s.repo.CountLocked(userID)
		if err != nil {
			return false, err
		}
		if locked >= maxLockedTotal {
			return false, ErrLockLimitReached
		}
	}

	if _, err := s.repo.SetLocked(shortlistID, userID, newStatus); err != nil {
		return false, err
	}

	if newStatus {
		s.onLocked(userID, entry)
	}
	return newStatus, nil
}

// onLocked seeds application guidance tasks and announces the final choice.
func (s *shortlistService) onLocked(userID uint, entry *domain.ShortlistEntry) {
	uniName := "University"
	if entry.University != nil && entry.University.Name != "" {
		uniName = entry.University.Name
	} else if uni, err := s.universityRepo.FindByID(entry.UniversityID); err == nil {
		uniName = uni.Name
	}

	tasks := []domain.Task{
		{
			UserID:      userID,
			Title:       fmt.Sprintf("Submit Application to %s", uniName),
			Description: fmt.Sprintf("Complete and submit the online application form for %s. Check deadline!", uniName),
			Category:    domain.TaskCategoryApplication,
		},
		{
			UserID:      userID,
			Title:       fmt.Sprintf("Customize SOP for %s", uniName),
			Description: fmt.Sprintf("Tailor your Statement of Purpose to highlight why you fit %s specifically.", uniName),
			Category:    domain.TaskCategoryDocument,
		},
		{
			UserID:      userID,
			Title:       fmt.Sprintf("Check Scholarship Deadlines (%s)", uniName),
			Description: "Research and note down external funding or scholarship deadlines.",
			Category:    domain.TaskCategoryFinancial,
		},
	}
	if err := s.taskRepo.CreateBatch(tasks); err != nil {
		s.logger.Warn("guidance task creation failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	if s.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"university_id":%d,"university":"%s"}`,
			userID, entry.UniversityID, uniName)
		if err := s.producer.PublishMessage([]byte("shortlist.locked"), []byte(payload)); err != nil {
			s.logger.Warn("publish lock event failed", zap.Error(err))
		}
	}
}

// Match evaluates one university for the caller, preferring the AI oracle
// and falling back to the rules engine when the oracle reports a sentinel.
func (s *shortlistService) Match(ctx context.Context, userID, universityID uint) (*match.Result, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, errors.New("complete your profile first")
		}
		return nil, err
	}

	uni, err := s.universityRepo.FindByID(universityID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, errors.New("university not found")
		}
		return nil, err
	}

	if s.oracle != nil {
		name := ""
		if user, userErr := s.userRepo.FindUserByID(userID); userErr == nil && user != nil {
			name = user.FullName
		}
		result := s.oracle.Evaluate(ctx, name, profile, uni)
		if result.ErrDetails == "" {
			return &result, nil
		}
		s.logger.Warn("oracle match failed, using rules engine",
			zap.Uint("university_id", universityID),
			zap.String("details", result.ErrDetails))
	}

	result := match.Evaluate(profile, uni)
	return &result, nil
}
