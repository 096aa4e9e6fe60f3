package match

import (
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
)

// Point budgets per factor. They are disjoint and sum to 95, plus the
// scholarship bonus; the final clamp to [0,100] is a safety invariant, not a
// reachable path for well-formed inputs.
const (
	gpaFullPts     = 20
	gpaClosePts    = 10
	gpaStretchPts  = 5
	budgetFullPts  = 25
	budgetNearPts  = 20
	budgetTightPts = 10
	scholarshipPts = 5
	countryPts     = 15
	fieldExactPts  = 20
	fieldRelPts    = 10
	examFullPts    = 15
	examClosePts   = 10
	examFarPts     = 5
)

// Score computes the 0-100 compatibility score between a student profile and
// a university. GRE/GMAT requirements never move the score; they surface as
// risks and recommended tasks instead.
func Score(p *domain.StudentProfile, u *domain.University) int {
	score := 0

	// GPA fit. Skipped entirely when either side is missing.
	if u.MinGPA != nil && p.GPA > 0 {
		gap := *u.MinGPA - p.GPA
		switch {
		case gap <= 0:
			score += gpaFullPts
		case gap <= 0.3:
			score += gpaClosePts
		case gap <= 0.5:
			score += gpaStretchPts
		}
	}

	// Budget fit against total annual cost.
	if u.TuitionMax > 0 && u.LivingCostYearly > 0 {
		totalCost := u.TotalAnnualCost()
		budget := p.BudgetMax
		switch {
		case budget >= totalCost:
			score += budgetFullPts
		case budget >= totalCost*0.8:
			score += budgetNearPts
		case budget >= totalCost*0.6:
			score += budgetTightPts
		}
		// Aid can close the gap, so an underfunded match with scholarships
		// still surfaces instead of sinking.
		if u.HasScholarships && budget < totalCost {
			score += scholarshipPts
		}
	}

	// Country preference, all or nothing.
	for _, c := range p.PreferredCountries {
		if c == u.Country {
			score += countryPts
			break
		}
	}

	score += fieldScore(p.FieldOfStudy, u.ProgramsOffered)

	// English proficiency, only once the exam is actually done.
	if p.IeltsToeflStatus == domain.ExamCompleted && p.IeltsToeflScore != nil && u.MinIelts != nil {
		got, min := *p.IeltsToeflScore, *u.MinIelts
		switch {
		case got >= min:
			score += examFullPts
		case got >= min-0.5:
			score += examClosePts
		case got >= min-1.0:
			score += examFarPts
		}
	}

	return clamp(score)
}

func fieldScore(field string, programs []string) int {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return 0
	}

	for _, program := range programs {
		p := strings.ToLower(program)
		if strings.Contains(p, field) || strings.Contains(field, p) {
			return fieldExactPts
		}
	}

	keywords := relatedKeywords(field)
	for _, program := range programs {
		p := strings.ToLower(program)
		for _, kw := range keywords {
			if strings.Contains(p, kw) {
				return fieldRelPts
			}
		}
	}

	return 0
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
