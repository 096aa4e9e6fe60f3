package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Upsert(profile *domain.StudentProfile) error
	FindByUserID(userID uint) (*domain.StudentProfile, error)
	Exists(userID uint) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) Upsert(profile *domain.StudentProfile) error {
	return p.db.Where("user_id = ?", profile.UserID).Assign(profile).FirstOrCreate(profile).Error
}

func (p *profileRepository) FindByUserID(userID uint) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	if err := p.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) Exists(userID uint) (bool, error) {
	var count int64
	err := p.db.Model(&domain.StudentProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}
