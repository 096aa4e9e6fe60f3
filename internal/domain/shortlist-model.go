package domain

import "time"

// Ambition buckets for shortlisted universities.
const (
	BucketDream  = "Dream"
	BucketTarget = "Target"
	BucketSafe   = "Safe"
)

func ValidBucket(b string) bool {
	return b == BucketDream || b == BucketTarget || b == BucketSafe
}

// ShortlistEntry relates one student to one university. The composite unique
// index is the authority on the one-entry-per-pair invariant; callers convert
// the duplicate-key violation into an idempotent outcome instead of racing a
// check-then-insert.
type ShortlistEntry struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"not null;uniqueIndex:uidx_shortlists_user_university" json:"user_id"`
	UniversityID uint    `gorm:"not null;uniqueIndex:uidx_shortlists_user_university" json:"university_id"`
	Bucket       string  `gorm:"type:varchar(10);not null;default:Target" json:"bucket"`
	IsLocked     bool    `gorm:"not null;default:false" json:"is_locked"`
	WhyFits      *string `json:"why_fits,omitempty"`
	Risks        *string `json:"risks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	University *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
}
