package match

import (
	"fmt"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
)

const (
	neutralWhyFits = "General good fit based on your profile."
	neutralRisks   = "No major risks identified. Good fit overall."
)

// WhyFits lists the factual reasons this university suits the student. Absent
// optional fields suppress their clause; score is accepted for contract
// symmetry with the scorer and oracle but does not change the wording.
func WhyFits(p *domain.StudentProfile, u *domain.University, score int) string {
	_ = score
	var reasons []string

	if u.MinGPA != nil && p.GPA > 0 && p.GPA >= *u.MinGPA {
		reasons = append(reasons, fmt.Sprintf("Your GPA of %.2g exceeds the minimum requirement of %.2g", p.GPA, *u.MinGPA))
	}

	for _, c := range p.PreferredCountries {
		if c == u.Country {
			reasons = append(reasons, fmt.Sprintf("Located in %s, which is one of your preferred countries", u.Country))
			break
		}
	}

	field := strings.ToLower(p.FieldOfStudy)
	if field != "" {
		for _, program := range u.ProgramsOffered {
			if strings.Contains(strings.ToLower(program), field) {
				reasons = append(reasons, "Offers your desired field of study: "+program)
				break
			}
		}
	}

	if u.TuitionMax > 0 && p.BudgetMax > 0 {
		totalCost := u.TotalAnnualCost()
		if p.BudgetMax >= totalCost {
			reasons = append(reasons, fmt.Sprintf("Annual cost ($%.0f) fits within your budget", totalCost))
		}
	}

	if u.HasScholarships {
		reasons = append(reasons, "Offers scholarships: "+strings.Join(u.ScholarshipTypes, ", "))
	}

	if u.Ranking != nil && *u.Ranking <= 50 {
		reasons = append(reasons, fmt.Sprintf("Highly ranked institution (#%d globally)", *u.Ranking))
	}

	if len(reasons) == 0 {
		return neutralWhyFits
	}
	return strings.Join(reasons, ". ") + "."
}

// Risks lists the challenges the student would face applying here. Never
// fails; missing data just drops the clause.
func Risks(p *domain.StudentProfile, u *domain.University) string {
	var risks []string

	if u.MinGPA != nil && p.GPA > 0 && p.GPA < *u.MinGPA {
		risks = append(risks, fmt.Sprintf("Your GPA is %.1f points below the minimum requirement", *u.MinGPA-p.GPA))
	}

	if u.TuitionMax > 0 && p.BudgetMax > 0 {
		totalCost := u.TotalAnnualCost()
		if totalCost > p.BudgetMax {
			risks = append(risks, fmt.Sprintf("Annual cost exceeds your budget by $%.0f", totalCost-p.BudgetMax))
			if u.HasScholarships {
				risks = append(risks, "Consider applying for available scholarships to offset costs")
			}
		}
	}

	if (u.RequiresGre || u.RequiresGmat) && p.GreGmatStatus == domain.ExamNotStarted {
		exam := "GMAT"
		if u.RequiresGre {
			exam = "GRE"
		}
		risks = append(risks, exam+" is required but you haven't started preparation")
	}

	if p.IeltsToeflStatus != domain.ExamCompleted {
		risks = append(risks, "IELTS/TOEFL score required - ensure you complete this before applying")
	}

	if u.AcceptanceRate > 0 && u.AcceptanceRate < 10 {
		risks = append(risks, fmt.Sprintf("Very competitive with only %.4g%% acceptance rate", u.AcceptanceRate))
	}

	if len(risks) == 0 {
		return neutralRisks
	}
	return strings.Join(risks, ". ") + "."
}

// Evaluate runs the full rule-based pipeline for one university.
func Evaluate(p *domain.StudentProfile, u *domain.University) Result {
	score := Score(p, u)
	return Result{
		Score:    score,
		Category: Categorize(score, u.AcceptanceRate, u.Ranking),
		WhyFits:  WhyFits(p, u, score),
		Risks:    Risks(p, u),
		Source:   SourceRuleBased,
	}
}
