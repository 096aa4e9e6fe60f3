package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/repository"
)

// actionExecutor backs the chat action pipeline with real storage. Directive
// parameters are model output, so university lookups are fuzzy and duplicate
// shortlist inserts resolve idempotently.
type actionExecutor struct {
	universityRepo repository.UniversityRepository
	shortlistRepo  repository.ShortlistRepository
	taskRepo       repository.TaskRepository
}

func NewActionExecutor(
	universityRepo repository.UniversityRepository,
	shortlistRepo repository.ShortlistRepository,
	taskRepo repository.TaskRepository,
) *actionExecutor {
	return &actionExecutor{
		universityRepo: universityRepo,
		shortlistRepo:  shortlistRepo,
		taskRepo:       taskRepo,
	}
}

func (a *actionExecutor) Shortlist(ctx context.Context, userID uint, name string) (string, bool, error) {
	uni, err := a.universityRepo.FindByNameLike(name)
	if err != nil {
		if helper.IsNotFound(err) {
			return "", false, fmt.Errorf("University '%s' not found in database.", name)
		}
		return "", false, err
	}

	entry := &domain.ShortlistEntry{
		UserID:       userID,
		UniversityID: uni.ID,
		Bucket:       domain.BucketTarget,
	}
	if err := a.shortlistRepo.Create(entry); err != nil {
		if helper.IsDuplicateEntry(err) {
			return uni.Name, true, nil
		}
		return "", false, err
	}
	return uni.Name, false, nil
}

func (a *actionExecutor) Lock(ctx context.Context, userID uint, name string) (string, error) {
	uni, err := a.universityRepo.FindByNameLike(name)
	if err != nil {
		if helper.IsNotFound(err) {
			return "", fmt.Errorf("University '%s' not found.", name)
		}
		return "", err
	}

	rows, err := a.shortlistRepo.LockByUniversity(userID, uni.ID)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", fmt.Errorf("'%s' is not in your shortlist. Please shortlist it first.", uni.Name)
	}
	return uni.Name, nil
}

func (a *actionExecutor) AddTask(ctx context.Context, userID uint, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("task title is required")
	}
	return a.taskRepo.Create(&domain.Task{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    domain.TaskCategoryAISuggestion,
	})
}
