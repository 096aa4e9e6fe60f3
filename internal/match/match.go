// Package match scores a university against a student profile, assigns an
// ambition bucket, and explains the result. Everything here is deterministic
// and total: missing optional inputs drop a factor's contribution instead of
// failing.
package match

// Source identifies which engine produced a Result.
type Source string

const (
	SourceRuleBased Source = "rule_based"
	SourceAI        Source = "ai"
)

// Result is the ephemeral outcome of matching one university for one student.
type Result struct {
	Score      int    `json:"match_score"`
	Category   string `json:"category"`
	WhyFits    string `json:"why_fits"`
	Risks      string `json:"risks"`
	Source     Source `json:"source"`
	ErrDetails string `json:"error_details,omitempty"`
}
