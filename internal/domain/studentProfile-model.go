package domain

import "time"

// Exam preparation statuses shared by IELTS/TOEFL and GRE/GMAT tracking.
const (
	ExamNotStarted = "Not Started"
	ExamScheduled  = "Scheduled"
	ExamCompleted  = "Completed"
)

type StudentProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Academic background
	EducationLevel string  `gorm:"type:varchar(100)" json:"education_level"`
	Major          string  `gorm:"type:varchar(255)" json:"major"`
	GraduationYear int     `json:"graduation_year"`
	GPA            float64 `gorm:"column:gpa" json:"gpa"`

	// Study goals
	IntendedDegree     string   `gorm:"type:varchar(100)" json:"intended_degree"`
	FieldOfStudy       string   `gorm:"type:varchar(255)" json:"field_of_study"`
	TargetIntakeYear   int      `json:"target_intake_year"`
	PreferredCountries []string `gorm:"serializer:json" json:"preferred_countries"`

	// Budget (yearly, USD)
	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`

	// Test preparation
	IeltsToeflStatus string   `gorm:"column:ielts_toefl_status;type:varchar(20);default:Not Started" json:"ielts_toefl_status"`
	IeltsToeflScore  *float64 `gorm:"column:ielts_toefl_score" json:"ielts_toefl_score,omitempty"`
	GreGmatStatus    string   `gorm:"column:gre_gmat_status;type:varchar(20);default:Not Started" json:"gre_gmat_status"`
	GreGmatScore     *float64 `gorm:"column:gre_gmat_score" json:"gre_gmat_score,omitempty"`
	SopStatus        string   `gorm:"column:sop_status;type:varchar(20);default:Not Started" json:"sop_status"`

	IsComplete bool `json:"is_complete"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
