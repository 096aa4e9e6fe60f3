package dto

import "github.com/unipath/counsel-svc/internal/domain"

type AddToShortlistRequest struct {
	UniversityID uint    `json:"university_id"`
	Bucket       string  `json:"bucket"`
	WhyFits      *string `json:"why_fits,omitempty"`
	Risks        *string `json:"risks,omitempty"`
}

type UpdateBucketRequest struct {
	Bucket string `json:"bucket"`
}

type ShortlistItem struct {
	ShortlistID  uint               `json:"shortlist_id"`
	UniversityID uint               `json:"university_id"`
	University   *domain.University `json:"university,omitempty"`
	Bucket       string             `json:"bucket"`
	IsLocked     bool               `json:"is_locked"`
	WhyFits      *string            `json:"why_fits,omitempty"`
	Risks        *string            `json:"risks,omitempty"`
	AddedAt      string             `json:"added_at"`
}

type ShortlistResponse struct {
	Dream  []ShortlistItem `json:"dream"`
	Target []ShortlistItem `json:"target"`
	Safe   []ShortlistItem `json:"safe"`

	Counts ShortlistCounts `json:"counts"`
}

type ShortlistCounts struct {
	Dream  int `json:"dream"`
	Target int `json:"target"`
	Safe   int `json:"safe"`
	Total  int `json:"total"`
}
