package dto

import "github.com/unipath/counsel-svc/internal/domain"

type LockedUniversity struct {
	ShortlistID  uint   `json:"id"`
	UniversityID uint   `json:"university_id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	Program      string `json:"program"`
	Bucket       string `json:"bucket"`
}

type DashboardResponse struct {
	ProfileSummary     ProfileSummary          `json:"profile_summary"`
	CurrentStage       string                  `json:"current_stage"`
	ProfileStrength    ProfileStrengthResponse `json:"profile_strength"`
	Tasks              []domain.Task           `json:"tasks"`
	LockedUniversities []LockedUniversity      `json:"locked_universities"`
}
