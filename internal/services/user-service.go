package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/helper/utils"
	"github.com/unipath/counsel-svc/internal/interfaces"
	"github.com/unipath/counsel-svc/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(input dto.RegisterRequest) error
	Login(input dto.UserLogin) (*domain.User, error)
	VerifyEmail(token string) error
	ForgotPassword(email string) error
	SetPassword(input dto.SetPasswordRequest) error
	GetUser(userID uint) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	producer interfaces.ProducerHandler
	auth     helper.Auth
	logger   *zap.Logger
}

func NewUserService(
	repo repository.UserRepository,
	producer interfaces.ProducerHandler,
	auth helper.Auth,
	logger *zap.Logger,
) UserService {
	return &userService{
		repo:     repo,
		producer: producer,
		auth:     auth,
		logger:   logger,
	}
}

func (u *userService) Register(input dto.RegisterRequest) error {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	if email == "" || strings.TrimSpace(input.Password) == "" || fullName == "" {
		return errors.New("invalid inputs")
	}
	if len(input.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	existing, err := u.repo.FindUserByEmail(email)
	if err == nil && existing != nil && existing.ID != 0 {
		return errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	newUser := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Status:       "active",
	}

	usr, err := u.repo.CreateUser(newUser)
	if err != nil {
		if helper.IsDuplicateEntry(err) {
			return errors.New("email already exists")
		}
		return err
	}
	if usr == nil || usr.ID == 0 {
		return errors.New("failed to create user")
	}

	plainToken, err := utils.RandomToken(32)
	if err != nil {
		return errors.New("failed to generate verification token")
	}
	exp := time.Now().Add(24 * time.Hour)

	usr.VerificationToken = utils.Sha256Hex(plainToken)
	usr.VerificationTokenExpiresAt = &exp

	if err := u.repo.SaveUser(usr); err != nil {
		return err
	}

	if u.producer != nil {
		payload := fmt.Sprintf(
			`{"user_id":%d,"email":"%s","token":"%s","expires_at":"%s"}`,
			usr.ID, usr.Email, plainToken, exp.Format(time.RFC3339),
		)
		if err := u.producer.PublishMessage([]byte("user.verify_email"), []byte(payload)); err != nil {
			u.logger.Warn("publish verify email event failed", zap.Error(err))
		}
	}

	return nil
}

func (u *userService) Login(input dto.UserLogin) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if email == "" || password == "" {
		return nil, errors.New("invalid email or password")
	}

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil || user.ID == 0 {
		return nil, errors.New("invalid email or password")
	}

	if user.Status != "" && user.Status != "active" {
		return nil, errors.New("account is not active")
	}

	if err := u.auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return user, nil
}

func (u *userService) VerifyEmail(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is required")
	}

	hash := utils.Sha256Hex(token)
	user, err := u.repo.FindUserByVerificationTokenHash(hash)
	if err != nil || user == nil {
		return errors.New("invalid token")
	}

	if user.VerificationTokenExpiresAt == nil || time.Now().After(*user.VerificationTokenExpiresAt) {
		return errors.New("token expired")
	}

	now := time.Now()
	user.EmailVerifiedAt = &now
	user.VerificationToken = ""
	user.VerificationTokenExpiresAt = nil
	return u.repo.SaveUser(user)
}

func (u *userService) ForgotPassword(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.repo.FindUserByEmail(email)
	if err != nil || user == nil {
		// Do not reveal whether the address is registered.
		return nil
	}

	plain, err := utils.RandomToken(32)
	if err != nil {
		return errors.New("failed to generate reset token")
	}

	exp := time.Now().Add(30 * time.Minute)
	user.ResetTokenHash = utils.Sha256Hex(plain)
	user.ResetTokenExpiresAt = &exp
	if err := u.repo.SaveUser(user); err != nil {
		return errors.New("fail to save user")
	}

	if u.producer != nil {
		payload := fmt.Sprintf(`{"user_id":%d,"email":"%s","token":"%s","expires_at":"%s"}`,
			user.ID, user.Email, plain, exp.Format(time.RFC3339),
		)
		if err := u.producer.PublishMessage([]byte("user.reset_password"), []byte(payload)); err != nil {
			u.logger.Warn("publish reset password event failed", zap.Error(err))
		}
	}

	return nil
}

func (u *userService) SetPassword(input dto.SetPasswordRequest) error {
	token := strings.TrimSpace(input.Token)
	newPassword := strings.TrimSpace(input.NewPassword)

	if token == "" || newPassword == "" {
		return errors.New("invalid input")
	}
	if len(newPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	hash := utils.Sha256Hex(token)
	user, err := u.repo.FindUserByResetTokenHash(hash)
	if err != nil || user == nil {
		return errors.New("invalid or expired token")
	}

	if user.ResetTokenExpiresAt == nil || time.Now().After(*user.ResetTokenExpiresAt) {
		return errors.New("invalid or expired token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("fail to hash password")
	}

	user.PasswordHash = string(hashedPassword)
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = nil

	return u.repo.SaveUser(user)
}

func (u *userService) GetUser(userID uint) (*domain.User, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	user, err := u.repo.FindUserByID(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
