package match

import (
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
)

// ProfileStrength summarizes profile readiness for the dashboard.
type ProfileStrength struct {
	Academics string `json:"academics"`
	Exams     string `json:"exams"`
	Sop       string `json:"sop"`
}

func AcademicStrength(gpa float64) string {
	switch {
	case gpa >= 3.5:
		return "Strong"
	case gpa >= 2.8:
		return "Average"
	default:
		return "Weak"
	}
}

func ExamReadiness(ieltsStatus, greStatus string) string {
	statuses := []string{strings.ToLower(ieltsStatus), strings.ToLower(greStatus)}

	done := 0
	inProgress := false
	for _, s := range statuses {
		if strings.Contains(s, "completed") || strings.Contains(s, "ready") {
			done++
		}
		if strings.Contains(s, "progress") || strings.Contains(s, "scheduled") {
			inProgress = true
		}
	}

	switch {
	case done == len(statuses):
		return "Done"
	case inProgress:
		return "In Progress"
	default:
		return "Not Started"
	}
}

func SopReadiness(sopStatus string) string {
	s := strings.ToLower(sopStatus)
	switch {
	case strings.Contains(s, "ready"), strings.Contains(s, "complete"):
		return "Ready"
	case strings.Contains(s, "draft"), strings.Contains(s, "progress"):
		return "Draft"
	default:
		return "Not Started"
	}
}

func Strength(p *domain.StudentProfile) ProfileStrength {
	return ProfileStrength{
		Academics: AcademicStrength(p.GPA),
		Exams:     ExamReadiness(p.IeltsToeflStatus, p.GreGmatStatus),
		Sop:       SopReadiness(p.SopStatus),
	}
}
