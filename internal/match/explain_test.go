package match

import (
	"strings"
	"testing"

	"github.com/unipath/counsel-svc/internal/domain"
)

func TestWhyFitsClauses(t *testing.T) {
	p := baseProfile()
	u := baseUniversity()
	u.HasScholarships = true
	u.ScholarshipTypes = []string{"Merit-based"}
	u.Ranking = intPtr(30)

	out := WhyFits(p, u, 80)

	for _, want := range []string{
		"exceeds the minimum requirement",
		"Located in Canada",
		"Offers your desired field of study: Computer Science",
		"fits within your budget",
		"Offers scholarships: Merit-based",
		"Highly ranked institution (#30 globally)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing clause %q in %q", want, out)
		}
	}
}

func TestWhyFitsNeutralFallback(t *testing.T) {
	p := &domain.StudentProfile{}
	u := &domain.University{Name: "Somewhere"}

	if got := WhyFits(p, u, 0); got != neutralWhyFits {
		t.Fatalf("expected neutral text, got %q", got)
	}
}

func TestRisksClauses(t *testing.T) {
	p := &domain.StudentProfile{
		GPA:              2.6,
		BudgetMax:        30000,
		GreGmatStatus:    domain.ExamNotStarted,
		IeltsToeflStatus: domain.ExamScheduled,
	}
	u := &domain.University{
		TuitionMax:       30000,
		LivingCostYearly: 15000,
		MinGPA:           floatPtr(3.0),
		RequiresGre:      true,
		HasScholarships:  true,
		AcceptanceRate:   8,
	}

	out := Risks(p, u)

	for _, want := range []string{
		"Your GPA is 0.4 points below the minimum requirement",
		"Annual cost exceeds your budget by $15000",
		"Consider applying for available scholarships to offset costs",
		"GRE is required but you haven't started preparation",
		"IELTS/TOEFL score required - ensure you complete this before applying",
		"Very competitive with only 8% acceptance rate",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing risk %q in %q", want, out)
		}
	}
}

func TestRisksNeutralFallback(t *testing.T) {
	p := baseProfile()
	p.IeltsToeflStatus = domain.ExamCompleted
	u := baseUniversity()
	u.MinIelts = nil

	if got := Risks(p, u); got != neutralRisks {
		t.Fatalf("expected neutral text, got %q", got)
	}
}

func TestEvaluateIsRuleBased(t *testing.T) {
	result := Evaluate(baseProfile(), baseUniversity())

	if result.Source != SourceRuleBased {
		t.Fatalf("expected rule_based source, got %s", result.Source)
	}
	if result.Score != 80 {
		t.Fatalf("expected score 80, got %d", result.Score)
	}
	if result.Category != domain.BucketSafe {
		t.Fatalf("expected Safe for 80 at 40%% acceptance, got %s", result.Category)
	}
	if result.WhyFits == "" || result.Risks == "" {
		t.Fatalf("expected explanations to be populated")
	}
	if result.ErrDetails != "" {
		t.Fatalf("unexpected error details: %s", result.ErrDetails)
	}
}
