package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(id uint) (*domain.User, error)
	FindUserByVerificationTokenHash(hash string) (*domain.User, error)
	FindUserByResetTokenHash(hash string) (*domain.User, error)
	SaveUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if err := u.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := u.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindUserByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := u.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindUserByVerificationTokenHash(hash string) (*domain.User, error) {
	var user domain.User
	if err := u.db.Where("verification_token = ?", hash).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindUserByResetTokenHash(hash string) (*domain.User, error) {
	var user domain.User
	if err := u.db.Where("reset_token_hash = ?", hash).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) SaveUser(user *domain.User) error {
	return u.db.Save(user).Error
}
