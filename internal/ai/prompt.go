package ai

import (
	"fmt"
	"strings"

	"github.com/unipath/counsel-svc/internal/domain"
)

// profileContext renders the counsellor system preamble: who the student is,
// where they are in the journey, and how to answer.
func profileContext(name string, p *domain.StudentProfile, stage string) string {
	if strings.TrimSpace(name) == "" {
		name = "Student"
	}
	if p == nil {
		p = &domain.StudentProfile{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI Study Abroad Counsellor helping %s plan their international education journey.\n\n", name)

	fmt.Fprintf(&b, "ACADEMIC BACKGROUND:\n")
	fmt.Fprintf(&b, "- Current Education: %s in %s\n", orNA(p.EducationLevel), orNA(p.Major))
	fmt.Fprintf(&b, "- GPA: %s\n", numOrNA(p.GPA))
	fmt.Fprintf(&b, "- Graduation Year: %s\n\n", intOrNA(p.GraduationYear))

	fmt.Fprintf(&b, "STUDY GOALS:\n")
	fmt.Fprintf(&b, "- Target Degree: %s\n", orNA(p.IntendedDegree))
	fmt.Fprintf(&b, "- Field of Study: %s\n", orNA(p.FieldOfStudy))
	fmt.Fprintf(&b, "- Target Intake: %s\n", intOrNA(p.TargetIntakeYear))
	fmt.Fprintf(&b, "- Preferred Countries: %s\n\n", strings.Join(p.PreferredCountries, ", "))

	fmt.Fprintf(&b, "BUDGET:\n")
	fmt.Fprintf(&b, "- Annual Budget: $%.0f - $%.0f\n\n", p.BudgetMin, p.BudgetMax)

	fmt.Fprintf(&b, "TEST PREPARATION:\n")
	fmt.Fprintf(&b, "- IELTS/TOEFL: %s - Score: %s\n", orNA(p.IeltsToeflStatus), floatPtrOrNA(p.IeltsToeflScore))
	fmt.Fprintf(&b, "- GRE/GMAT: %s - Score: %s\n", orNA(p.GreGmatStatus), floatPtrOrNA(p.GreGmatScore))
	fmt.Fprintf(&b, "- SOP Status: %s\n\n", orNA(p.SopStatus))

	fmt.Fprintf(&b, "CURRENT STAGE: %s\n\n", stage)

	fmt.Fprintf(&b, `IMPORTANT GUIDELINES:
1. Address the student by their name (%s)
2. KEEP RESPONSES SHORT AND SIMPLE (max 3-4 sentences per section).
3. Use simple bullet points for readability.
4. DO NOT USE ASTERISKS (*) FOR BOLDING. DO NOT USE BOLD TEXT.
5. Focus on the most important 2-3 points only.
6. Be encouraging but direct.

Respond in a helpful, conversational tone. Avoid jargon.`, name)

	return b.String()
}

// toolsContext teaches the model the directive grammar that the action
// pipeline understands. Tags are stripped before the reply reaches the user.
const toolsContext = `AVAILABLE TOOLS:
You can perform actions for the student. Use these EXACT formats in your response (Action tags will be hidden from user):

1. SHORTLIST UNIVERSITY: <<<ACTION:SHORTLIST:University Name>>>
   - Use when student wants to add a university or you recommend one strongly.

2. LOCK UNIVERSITY: <<<ACTION:LOCK:University Name>>>
   - Use when student decides to finalize/lock a university application.
   - The university MUST already be in their shortlist.

3. CREATE TASK: <<<ACTION:TASK:Title|Description>>>
   - Use to add items to their to-do list.

RULES:
- Only use tools when explicitly requested or clearly implied.
- You can use multiple tools in one response.
- Always provide a polite text confirmation along with the tool tag.`

func chatPrompt(name string, p *domain.StudentProfile, stage, userMessage string) string {
	return fmt.Sprintf("%s\n\n%s\n\nSTUDENT QUESTION:\n%s\n\nCOUNSELLOR RESPONSE:",
		profileContext(name, p, stage), toolsContext, userMessage)
}

func matchPrompt(name string, p *domain.StudentProfile, u *domain.University) string {
	uni := fmt.Sprintf(`UNIVERSITY DETAILS:
- Name: %s
- Country: %s
- Global Ranking: %s
- Acceptance Rate: %.4g%%
- Tuition: $%.0f
- Min GPA: %s`,
		u.Name, u.Country, intPtrOrNA(u.Ranking), u.AcceptanceRate, u.TuitionMax, floatPtrOrNA(u.MinGPA))

	return fmt.Sprintf(`%s

%s

Evaluate the match chances for this student applying to %s.

Return ONLY a JSON object with the following keys:
- match_score: (integer 0-100)
- category: (string "Dream", "Target", or "Safe")
- reasoning: (string, brief 1-sentence explanation)

Do not include markdown formatting or explanations outside the JSON.`,
		profileContext(name, p, domain.StageShortlisting), uni, u.Name)
}

func taskPrompt(name string, p *domain.StudentProfile, stage string) string {
	return fmt.Sprintf(`%s

Generate 3-5 specific, actionable tasks this student should complete IMMEDIATELY based on their current stage and profile.

Format your response as a numbered list where each item has:
1. Clear task title
2. Brief description (1-2 sentences)

Example:
1. Prepare for IELTS Exam - Schedule your IELTS exam for at least 2 months before application deadlines.

Generate tasks now:`, profileContext(name, p, stage))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func numOrNA(f float64) string {
	if f == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2g", f)
}

func intOrNA(n int) string {
	if n == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", n)
}

func intPtrOrNA(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}

func floatPtrOrNA(f *float64) string {
	if f == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4g", *f)
}
