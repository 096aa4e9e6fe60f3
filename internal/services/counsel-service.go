package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/repository"
	"go.uber.org/zap"
)

const chatHistoryLimit = 50

// ChatOracle produces the counsellor's reply, apology text included, so the
// service never sees an error from it.
type ChatOracle interface {
	Chat(ctx context.Context, name string, p *domain.StudentProfile, stage, userMessage string) string
}

// ActionRunner strips directive tags from a reply and executes them.
type ActionRunner interface {
	Run(ctx context.Context, userID uint, text string) string
}

type CounselService interface {
	Chat(ctx context.Context, userID uint, input dto.ChatRequest) (*dto.ChatResponse, error)
	History(userID uint) ([]domain.ChatMessage, error)
}

type counselService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	chatRepo    repository.ChatRepository
	dashboard   DashboardService
	oracle      ChatOracle
	pipeline    ActionRunner
	logger      *zap.Logger
}

func NewCounselService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	chatRepo repository.ChatRepository,
	dashboard DashboardService,
	oracle ChatOracle,
	pipeline ActionRunner,
	logger *zap.Logger,
) CounselService {
	return &counselService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		chatRepo:    chatRepo,
		dashboard:   dashboard,
		oracle:      oracle,
		pipeline:    pipeline,
		logger:      logger,
	}
}

func (c *counselService) Chat(ctx context.Context, userID uint, input dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, errors.New("message is required")
	}

	user, err := c.userRepo.FindUserByID(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	profile, err := c.profileRepo.FindByUserID(userID)
	if err != nil && !helper.IsNotFound(err) {
		return nil, err
	}

	currentStage, err := c.dashboard.CurrentStage(userID)
	if err != nil {
		c.logger.Warn("stage resolution failed, defaulting", zap.Uint("user_id", userID), zap.Error(err))
		currentStage = domain.StageOnboarding
	}

	reply := c.oracle.Chat(ctx, user.FullName, profile, currentStage, message)
	reply = c.pipeline.Run(ctx, userID, reply)

	record := &domain.ChatMessage{
		UserID:   userID,
		Message:  message,
		Response: reply,
	}
	if err := c.chatRepo.Create(record); err != nil {
		// History is a convenience, the reply still goes out.
		c.logger.Warn("chat history write failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	return &dto.ChatResponse{
		Message:   message,
		Response:  reply,
		Timestamp: time.Now(),
	}, nil
}

func (c *counselService) History(userID uint) ([]domain.ChatMessage, error) {
	return c.chatRepo.ListByUser(userID, chatHistoryLimit)
}
