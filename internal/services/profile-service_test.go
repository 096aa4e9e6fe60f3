package services

import (
	"testing"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"go.uber.org/zap"
)

func completeProfileInput() dto.ProfileInput {
	return dto.ProfileInput{
		EducationLevel:     "Bachelor's",
		Major:              "Computer Science",
		GraduationYear:     2025,
		GPA:                3.4,
		IntendedDegree:     "Master's",
		FieldOfStudy:       "Computer Science",
		TargetIntakeYear:   2026,
		PreferredCountries: []string{"Canada", "Germany"},
		BudgetMin:          15000,
		BudgetMax:          45000,
	}
}

func profileFixture(profiles ...*domain.StudentProfile) (ProfileService, *stubProfileRepo, *stubStageRepo) {
	profileRepo := newStubProfileRepo(profiles...)
	stageRepo := newStubStageRepo()
	return NewProfileService(profileRepo, stageRepo, zap.NewNop()), profileRepo, stageRepo
}

func TestProfileSaveValidation(t *testing.T) {
	svc, _, _ := profileFixture()

	cases := []struct {
		name   string
		mutate func(*dto.ProfileInput)
	}{
		{"gpa above scale", func(in *dto.ProfileInput) { in.GPA = 4.5 }},
		{"negative gpa", func(in *dto.ProfileInput) { in.GPA = -0.1 }},
		{"negative budget", func(in *dto.ProfileInput) { in.BudgetMin = -1 }},
		{"inverted budget range", func(in *dto.ProfileInput) { in.BudgetMin = 50000; in.BudgetMax = 40000 }},
	}
	for _, tc := range cases {
		input := completeProfileInput()
		tc.mutate(&input)
		if _, err := svc.Save(1, input); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}

	if _, err := svc.Save(0, completeProfileInput()); err == nil {
		t.Fatal("expected invalid user id error")
	}
}

func TestProfileSaveMarksCompleteAndCachesStage(t *testing.T) {
	svc, profileRepo, stageRepo := profileFixture()

	profile, err := svc.Save(1, completeProfileInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.IsComplete {
		t.Fatal("expected complete profile")
	}
	if stageRepo.stages[1] != domain.StageProfileReady {
		t.Fatalf("expected PROFILE_READY cache, got %q", stageRepo.stages[1])
	}
	if _, ok := profileRepo.profiles[1]; !ok {
		t.Fatal("profile not persisted")
	}
}

func TestProfileSavePartialStaysIncomplete(t *testing.T) {
	svc, _, stageRepo := profileFixture()

	input := completeProfileInput()
	input.FieldOfStudy = ""
	profile, err := svc.Save(1, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.IsComplete {
		t.Fatal("partial profile marked complete")
	}
	if len(stageRepo.stages) != 0 {
		t.Fatal("stage cached for an incomplete profile")
	}
}

func TestProfileSaveDefaultsExamStatuses(t *testing.T) {
	svc, _, _ := profileFixture()

	profile, err := svc.Save(1, completeProfileInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.IeltsToeflStatus != domain.ExamNotStarted ||
		profile.GreGmatStatus != domain.ExamNotStarted ||
		profile.SopStatus != domain.ExamNotStarted {
		t.Fatalf("exam statuses not defaulted: %s / %s / %s",
			profile.IeltsToeflStatus, profile.GreGmatStatus, profile.SopStatus)
	}
}

func TestProfileStrength(t *testing.T) {
	profile := completeTestProfile(1)
	profile.IeltsToeflStatus = domain.ExamCompleted
	profile.GreGmatStatus = domain.ExamCompleted
	svc, _, _ := profileFixture(profile)

	strength, err := svc.Strength(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strength.Academics != "Strong" {
		t.Fatalf("expected Strong, got %s", strength.Academics)
	}
	if strength.Exams != "Done" {
		t.Fatalf("expected Done, got %s", strength.Exams)
	}
}
