package domain

import "time"

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"not null" json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}
