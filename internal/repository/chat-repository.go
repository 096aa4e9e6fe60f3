package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(message *domain.ChatMessage) error
	ListByUser(userID uint, limit int) ([]domain.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (c *chatRepository) Create(message *domain.ChatMessage) error {
	return c.db.Create(message).Error
}

func (c *chatRepository) ListByUser(userID uint, limit int) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	q := c.db.Where("user_id = ?", userID).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
