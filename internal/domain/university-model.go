package domain

import "time"

type University struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Country string `gorm:"type:varchar(100);index" json:"country"`
	City    string `gorm:"type:varchar(100)" json:"city"`

	// Lower is better. Nil when unranked.
	Ranking        *int    `json:"ranking,omitempty"`
	AcceptanceRate float64 `json:"acceptance_rate"`

	// Costs (yearly, USD)
	TuitionMin       float64 `json:"tuition_min"`
	TuitionMax       float64 `json:"tuition_max"`
	LivingCostYearly float64 `json:"living_cost_yearly"`

	// Admission requirements
	MinGPA       *float64 `gorm:"column:min_gpa" json:"min_gpa,omitempty"`
	MinIelts     *float64 `gorm:"column:min_ielts" json:"min_ielts,omitempty"`
	RequiresGre  bool     `gorm:"column:requires_gre" json:"requires_gre"`
	RequiresGmat bool     `gorm:"column:requires_gmat" json:"requires_gmat"`

	ProgramsOffered  []string `gorm:"serializer:json" json:"programs_offered"`
	HasScholarships  bool     `json:"has_scholarships"`
	ScholarshipTypes []string `gorm:"serializer:json" json:"scholarship_types"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TotalAnnualCost is tuition plus a year of living costs.
func (u *University) TotalAnnualCost() float64 {
	return u.TuitionMax + u.LivingCostYearly
}
