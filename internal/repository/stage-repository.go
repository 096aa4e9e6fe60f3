package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StageRepository interface {
	Get(userID uint) (*domain.UserStage, error)
	Upsert(userID uint, stage string) error
}

type stageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) StageRepository {
	return &stageRepository{db: db}
}

func (s *stageRepository) Get(userID uint) (*domain.UserStage, error) {
	var stage domain.UserStage
	if err := s.db.Where("user_id = ?", userID).First(&stage).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

func (s *stageRepository) Upsert(userID uint, stage string) error {
	record := domain.UserStage{UserID: userID, CurrentStage: stage}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_stage", "updated_at"}),
	}).Create(&record).Error
}
