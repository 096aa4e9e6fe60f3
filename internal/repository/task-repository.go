package repository

import (
	"time"

	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *domain.Task) error
	CreateBatch(tasks []domain.Task) error
	ListByUser(userID uint) ([]domain.Task, error)
	Complete(id, userID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (t *taskRepository) Create(task *domain.Task) error {
	return t.db.Create(task).Error
}

func (t *taskRepository) CreateBatch(tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return t.db.Create(&tasks).Error
}

func (t *taskRepository) ListByUser(userID uint) ([]domain.Task, error) {
	var tasks []domain.Task
	err := t.db.Where("user_id = ?", userID).Order("is_complete ASC, created_at ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *taskRepository) Complete(id, userID uint) (int64, error) {
	now := time.Now()
	res := t.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_complete": true, "completed_at": &now})
	return res.RowsAffected, res.Error
}

func (t *taskRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := t.db.Model(&domain.Task{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
