package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/helper"
	"github.com/unipath/counsel-svc/internal/match"
	"github.com/unipath/counsel-svc/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type RecommendationService interface {
	Recommend(userID uint, limit int) (*dto.RecommendationsResponse, error)
	Search(userID uint, query dto.UniversitySearchQuery) (*dto.UniversitySearchResponse, error)
	GetUniversity(userID, universityID uint) (*dto.UniversityResult, error)
}

type recommendationService struct {
	universityRepo repository.UniversityRepository
	profileRepo    repository.ProfileRepository
	shortlistRepo  repository.ShortlistRepository
}

func NewRecommendationService(
	universityRepo repository.UniversityRepository,
	profileRepo repository.ProfileRepository,
	shortlistRepo repository.ShortlistRepository,
) RecommendationService {
	return &recommendationService{
		universityRepo: universityRepo,
		profileRepo:    profileRepo,
		shortlistRepo:  shortlistRepo,
	}
}

func (r *recommendationService) Recommend(userID uint, limit int) (*dto.RecommendationsResponse, error) {
	profile, err := r.profileRepo.FindByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, errors.New("complete your profile to get recommendations")
		}
		return nil, err
	}

	universities, err := r.universityRepo.List()
	if err != nil {
		return nil, err
	}

	shortlisted, err := r.shortlistIndex(userID)
	if err != nil {
		return nil, err
	}

	recs := make([]dto.Recommendation, 0, len(universities))
	for i := range universities {
		uni := universities[i]
		result := match.Evaluate(profile, &uni)
		recs = append(recs, dto.Recommendation{
			UniversityResult: annotate(uni, shortlisted),
			MatchScore:       result.Score,
			Category:         result.Category,
			WhyFits:          result.WhyFits,
			Risks:            result.Risks,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}

	return &dto.RecommendationsResponse{
		Recommendations: recs,
		Total:           len(recs),
	}, nil
}

func (r *recommendationService) Search(userID uint, query dto.UniversitySearchQuery) (*dto.UniversitySearchResponse, error) {
	filter := repository.UniversityFilter{
		Country:         strings.TrimSpace(query.Country),
		HasScholarships: query.HasScholarships,
		MaxMinGPA:       query.MinGPA,
		NameSearch:      strings.TrimSpace(query.Search),
	}

	universities, err := r.universityRepo.Search(filter)
	if err != nil {
		return nil, err
	}

	// Budget and field filters need the computed total cost and the program
	// list, so they run here rather than in SQL.
	filtered := universities[:0]
	for i := range universities {
		uni := universities[i]
		total := uni.TotalAnnualCost()
		if query.MinBudget != nil && total < *query.MinBudget {
			continue
		}
		if query.MaxBudget != nil && total > *query.MaxBudget {
			continue
		}
		if f := strings.TrimSpace(query.Field); f != "" && !offersProgram(&uni, f) {
			continue
		}
		filtered = append(filtered, uni)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	shortlisted, err := r.shortlistIndex(userID)
	if err != nil {
		return nil, err
	}

	results := make([]dto.UniversityResult, 0, end-start)
	for i := start; i < end; i++ {
		results = append(results, annotate(filtered[i], shortlisted))
	}

	return &dto.UniversitySearchResponse{
		Universities: results,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *recommendationService) GetUniversity(userID, universityID uint) (*dto.UniversityResult, error) {
	uni, err := r.universityRepo.FindByID(universityID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, errors.New("university not found")
		}
		return nil, err
	}

	shortlisted, err := r.shortlistIndex(userID)
	if err != nil {
		return nil, err
	}

	result := annotate(*uni, shortlisted)
	return &result, nil
}

func (r *recommendationService) shortlistIndex(userID uint) (map[uint]dto.ShortlistInfo, error) {
	if userID == 0 {
		return nil, nil
	}
	entries, err := r.shortlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	index := make(map[uint]dto.ShortlistInfo, len(entries))
	for _, e := range entries {
		index[e.UniversityID] = dto.ShortlistInfo{Bucket: e.Bucket, IsLocked: e.IsLocked}
	}
	return index, nil
}

func annotate(uni domain.University, shortlisted map[uint]dto.ShortlistInfo) dto.UniversityResult {
	result := dto.UniversityResult{
		University:      uni,
		TotalAnnualCost: uni.TotalAnnualCost(),
	}
	if info, ok := shortlisted[uni.ID]; ok {
		result.ShortlistInfo = &info
	}
	return result
}

func offersProgram(u *domain.University, field string) bool {
	field = strings.ToLower(field)
	for _, program := range u.ProgramsOffered {
		if strings.Contains(strings.ToLower(program), field) {
			return true
		}
	}
	return false
}
