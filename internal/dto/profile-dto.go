package dto

import "github.com/unipath/counsel-svc/internal/match"

type ProfileInput struct {
	EducationLevel     string   `json:"education_level"`
	Major              string   `json:"major"`
	GraduationYear     int      `json:"graduation_year"`
	GPA                float64  `json:"gpa"`
	IntendedDegree     string   `json:"intended_degree"`
	FieldOfStudy       string   `json:"field_of_study"`
	TargetIntakeYear   int      `json:"target_intake_year"`
	PreferredCountries []string `json:"preferred_countries"`
	BudgetMin          float64  `json:"budget_min"`
	BudgetMax          float64  `json:"budget_max"`
	IeltsToeflStatus   string   `json:"ielts_toefl_status"`
	IeltsToeflScore    *float64 `json:"ielts_toefl_score,omitempty"`
	GreGmatStatus      string   `json:"gre_gmat_status"`
	GreGmatScore       *float64 `json:"gre_gmat_score,omitempty"`
	SopStatus          string   `json:"sop_status"`
}

type ProfileSummary struct {
	Education    string   `json:"education"`
	TargetDegree string   `json:"target_degree"`
	Field        string   `json:"field"`
	TargetIntake int      `json:"target_intake"`
	Countries    []string `json:"countries"`
	Budget       string   `json:"budget"`
	GPA          float64  `json:"gpa"`
}

type ProfileStrengthResponse = match.ProfileStrength
