package dto

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/match"
)

type UniversitySearchQuery struct {
	Country         string   `query:"country"`
	MinBudget       *float64 `query:"min_budget"`
	MaxBudget       *float64 `query:"max_budget"`
	Field           string   `query:"field"`
	HasScholarships *bool    `query:"has_scholarships"`
	MinGPA          *float64 `query:"min_gpa"`
	Search          string   `query:"search"`
	Page            int      `query:"page"`
	Limit           int      `query:"limit"`
}

// ShortlistInfo annotates a university with the caller's shortlist state.
type ShortlistInfo struct {
	Bucket   string `json:"bucket"`
	IsLocked bool   `json:"is_locked"`
}

type UniversityResult struct {
	domain.University
	TotalAnnualCost float64        `json:"total_annual_cost"`
	ShortlistInfo   *ShortlistInfo `json:"shortlist_info"`
}

type UniversitySearchResponse struct {
	Universities []UniversityResult `json:"universities"`
	Total        int                `json:"total"`
	Page         int                `json:"page"`
	Limit        int                `json:"limit"`
	TotalPages   int                `json:"total_pages"`
}

type Recommendation struct {
	UniversityResult
	MatchScore int    `json:"match_score"`
	Category   string `json:"category"`
	WhyFits    string `json:"why_fits"`
	Risks      string `json:"risks"`
}

type RecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	Total           int              `json:"total"`
}

type MatchResponse = match.Result
