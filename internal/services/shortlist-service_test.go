package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/dto"
	"github.com/unipath/counsel-svc/internal/match"
	"go.uber.org/zap"
)

type shortlistFixture struct {
	svc           ShortlistService
	shortlistRepo *stubShortlistRepo
	taskRepo      *stubTaskRepo
	producer      *stubProducer
	oracle        *stubOracle
}

func newShortlistFixture(profiles ...*domain.StudentProfile) *shortlistFixture {
	uniRepo := &stubUniversityRepo{universities: []domain.University{
		{ID: 1, Name: "University of Toronto", Country: "Canada", AcceptanceRate: 43,
			TuitionMax: 35000, LivingCostYearly: 15000, MinGPA: fptr(3.0), MinIelts: fptr(6.5),
			ProgramsOffered: []string{"Computer Science"}, HasScholarships: true},
		{ID: 2, Name: "Technical University of Munich", Country: "Germany", AcceptanceRate: 8,
			TuitionMax: 300, LivingCostYearly: 12000, MinGPA: fptr(3.0),
			ProgramsOffered: []string{"Engineering"}},
	}}
	f := &shortlistFixture{
		shortlistRepo: &stubShortlistRepo{},
		taskRepo:      &stubTaskRepo{},
		producer:      &stubProducer{},
		oracle:        &stubOracle{},
	}
	f.svc = NewShortlistService(
		f.shortlistRepo,
		uniRepo,
		newStubProfileRepo(profiles...),
		f.taskRepo,
		newStubUserRepo(&domain.User{ID: 1, Email: "amrita@example.com", FullName: "Amrita"}),
		f.oracle,
		f.producer,
		zap.NewNop(),
	)
	return f
}

func TestShortlistAddDefaultsToTarget(t *testing.T) {
	f := newShortlistFixture()

	entry, err := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Bucket != domain.BucketTarget {
		t.Fatalf("expected Target bucket, got %s", entry.Bucket)
	}
}

func TestShortlistAddRejectsBadInput(t *testing.T) {
	f := newShortlistFixture()

	if _, err := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1, Bucket: "Reach"}); err == nil {
		t.Fatal("expected invalid bucket error")
	}
	if _, err := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 99}); err == nil || err.Error() != "university not found" {
		t.Fatalf("expected university not found, got %v", err)
	}
}

func TestShortlistAddDuplicate(t *testing.T) {
	f := newShortlistFixture()

	if _, err := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1, Bucket: domain.BucketDream})
	if !errors.Is(err, ErrAlreadyShortlisted) {
		t.Fatalf("expected ErrAlreadyShortlisted, got %v", err)
	}
}

func TestShortlistListGroupsByBucket(t *testing.T) {
	f := newShortlistFixture()
	f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1, Bucket: domain.BucketDream})
	f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 2, Bucket: domain.BucketSafe})

	resp, err := f.svc.List(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Dream) != 1 || len(resp.Safe) != 1 || len(resp.Target) != 0 {
		t.Fatalf("unexpected grouping: dream=%d target=%d safe=%d",
			len(resp.Dream), len(resp.Target), len(resp.Safe))
	}
	if resp.Counts.Total != 2 {
		t.Fatalf("expected total 2, got %d", resp.Counts.Total)
	}
}

func TestShortlistRemoveLockedEntry(t *testing.T) {
	f := newShortlistFixture()
	entry, _ := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})
	f.shortlistRepo.entries[0].IsLocked = true

	err := f.svc.Remove(1, entry.ID)
	if !errors.Is(err, ErrEntryLocked) {
		t.Fatalf("expected ErrEntryLocked, got %v", err)
	}

	if err := f.svc.Remove(1, 999); err == nil || err.Error() != "shortlist item not found" {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShortlistMoveBucketLockedOrMissing(t *testing.T) {
	f := newShortlistFixture()
	entry, _ := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})

	if err := f.svc.MoveBucket(1, entry.ID, domain.BucketDream); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.shortlistRepo.entries[0].Bucket != domain.BucketDream {
		t.Fatalf("bucket not updated: %s", f.shortlistRepo.entries[0].Bucket)
	}

	f.shortlistRepo.entries[0].IsLocked = true
	if err := f.svc.MoveBucket(1, entry.ID, domain.BucketSafe); err == nil {
		t.Fatal("expected error moving a locked entry")
	}
	if err := f.svc.MoveBucket(1, entry.ID, "Reach"); err == nil {
		t.Fatal("expected invalid bucket error")
	}
}

func TestShortlistToggleLockSeedsGuidanceTasks(t *testing.T) {
	f := newShortlistFixture()
	entry, _ := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})

	locked, err := f.svc.ToggleLock(1, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked {
		t.Fatal("expected locked=true")
	}
	if len(f.taskRepo.tasks) != 3 {
		t.Fatalf("expected 3 guidance tasks, got %d", len(f.taskRepo.tasks))
	}
	wantTitles := []string{
		"Submit Application to University of Toronto",
		"Customize SOP for University of Toronto",
		"Check Scholarship Deadlines (University of Toronto)",
	}
	for i, want := range wantTitles {
		if f.taskRepo.tasks[i].Title != want {
			t.Fatalf("task %d: got %q, want %q", i, f.taskRepo.tasks[i].Title, want)
		}
	}
	if len(f.producer.keys) != 1 || f.producer.keys[0] != "shortlist.locked" {
		t.Fatalf("expected shortlist.locked event, got %v", f.producer.keys)
	}
	if !strings.Contains(f.producer.values[0], `"university":"University of Toronto"`) {
		t.Fatalf("payload missing university name: %s", f.producer.values[0])
	}
}

func TestShortlistToggleLockUnlock(t *testing.T) {
	f := newShortlistFixture()
	entry, _ := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})
	f.shortlistRepo.entries[0].IsLocked = true

	locked, err := f.svc.ToggleLock(1, entry.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if locked {
		t.Fatal("expected locked=false after unlock")
	}
	if len(f.taskRepo.tasks) != 0 {
		t.Fatal("unlock must not seed guidance tasks")
	}
}

func TestShortlistToggleLockCap(t *testing.T) {
	f := newShortlistFixture()
	for i := uint(10); i < 14; i++ {
		f.shortlistRepo.entries = append(f.shortlistRepo.entries, domain.ShortlistEntry{
			ID: i, UserID: 1, UniversityID: i, Bucket: domain.BucketTarget, IsLocked: true,
		})
	}
	entry, _ := f.svc.Add(1, dto.AddToShortlistRequest{UniversityID: 1})

	_, err := f.svc.ToggleLock(1, entry.ID)
	if !errors.Is(err, ErrLockLimitReached) {
		t.Fatalf("expected ErrLockLimitReached, got %v", err)
	}
	for _, e := range f.shortlistRepo.entries {
		if e.ID == entry.ID && e.IsLocked {
			t.Fatal("entry locked past the cap")
		}
	}
}

func TestMatchPrefersOracle(t *testing.T) {
	f := newShortlistFixture(completeTestProfile(1))
	f.oracle.result = match.Result{
		Score: 88, Category: "Target", WhyFits: "great fit", Risks: "none", Source: match.SourceAI,
	}

	result, err := f.svc.Match(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != match.SourceAI || result.Score != 88 {
		t.Fatalf("oracle result not used: %+v", result)
	}
	if f.oracle.calls != 1 {
		t.Fatalf("expected 1 oracle call, got %d", f.oracle.calls)
	}
}

func TestMatchFallsBackToRules(t *testing.T) {
	f := newShortlistFixture(completeTestProfile(1))
	f.oracle.result = match.Result{Source: match.SourceAI, ErrDetails: "model timeout"}

	result, err := f.svc.Match(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != match.SourceRuleBased {
		t.Fatalf("expected rules fallback, got source %s", result.Source)
	}
	if result.Score <= 0 {
		t.Fatalf("expected positive rule score, got %d", result.Score)
	}
	if result.ErrDetails != "" {
		t.Fatalf("fallback must clear error details, got %q", result.ErrDetails)
	}
}

func TestMatchRequiresProfile(t *testing.T) {
	f := newShortlistFixture()

	_, err := f.svc.Match(context.Background(), 1, 1)
	if err == nil || err.Error() != "complete your profile first" {
		t.Fatalf("expected profile error, got %v", err)
	}

	f2 := newShortlistFixture(completeTestProfile(1))
	if _, err := f2.svc.Match(context.Background(), 1, 99); err == nil || err.Error() != "university not found" {
		t.Fatalf("expected university not found, got %v", err)
	}
}
