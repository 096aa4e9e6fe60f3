package domain

import "time"

// Journey stages. The persisted row is only a cache of the value derived from
// stored facts; readers must recompute and correct it, never trust it.
const (
	StageOnboarding   = "ONBOARDING"
	StageProfileReady = "PROFILE_READY"
	StageDiscovery    = "DISCOVERY"
	StageShortlisting = "SHORTLISTING"
	StageLocked       = "LOCKED"
)

type UserStage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStage string    `gorm:"type:varchar(20);not null;default:ONBOARDING" json:"current_stage"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
