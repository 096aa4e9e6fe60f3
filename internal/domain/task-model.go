package domain

import "time"

const (
	TaskCategoryGeneral      = "general"
	TaskCategoryExam         = "exam"
	TaskCategoryDocument     = "document"
	TaskCategoryApplication  = "application"
	TaskCategoryFinancial    = "financial"
	TaskCategoryAISuggestion = "ai_suggestion"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `json:"description"`
	Category    string     `gorm:"type:varchar(30);default:general" json:"category"`
	IsComplete  bool       `gorm:"not null;default:false" json:"is_complete"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
