package services

import (
	"context"
	"strings"
	"testing"

	"github.com/unipath/counsel-svc/internal/domain"
)

func executorFixture() (*actionExecutor, *stubShortlistRepo, *stubTaskRepo) {
	uniRepo := &stubUniversityRepo{universities: []domain.University{
		{ID: 1, Name: "University of Toronto", Country: "Canada"},
		{ID: 2, Name: "Technical University of Munich", Country: "Germany"},
	}}
	shortlistRepo := &stubShortlistRepo{}
	taskRepo := &stubTaskRepo{}
	return NewActionExecutor(uniRepo, shortlistRepo, taskRepo), shortlistRepo, taskRepo
}

func TestExecutorShortlistFuzzyLookup(t *testing.T) {
	exec, shortlistRepo, _ := executorFixture()

	name, already, err := exec.Shortlist(context.Background(), 7, "toronto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if already {
		t.Fatal("fresh entry reported as already shortlisted")
	}
	if name != "University of Toronto" {
		t.Fatalf("expected canonical name, got %q", name)
	}
	if len(shortlistRepo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(shortlistRepo.entries))
	}
	if shortlistRepo.entries[0].Bucket != domain.BucketTarget {
		t.Fatalf("expected Target bucket, got %s", shortlistRepo.entries[0].Bucket)
	}
}

func TestExecutorShortlistUnknownUniversity(t *testing.T) {
	exec, _, _ := executorFixture()

	_, _, err := exec.Shortlist(context.Background(), 7, "Hogwarts")
	if err == nil {
		t.Fatal("expected error for unknown university")
	}
	if err.Error() != "University 'Hogwarts' not found in database." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestExecutorShortlistDuplicateIsIdempotent(t *testing.T) {
	exec, shortlistRepo, _ := executorFixture()

	if _, _, err := exec.Shortlist(context.Background(), 7, "Toronto"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	name, already, err := exec.Shortlist(context.Background(), 7, "University of Toronto")
	if err != nil {
		t.Fatalf("duplicate insert should not error: %v", err)
	}
	if !already {
		t.Fatal("expected already=true on duplicate")
	}
	if name != "University of Toronto" {
		t.Fatalf("unexpected name: %q", name)
	}
	if len(shortlistRepo.entries) != 1 {
		t.Fatalf("duplicate created a second entry: %d", len(shortlistRepo.entries))
	}
}

func TestExecutorLock(t *testing.T) {
	exec, shortlistRepo, _ := executorFixture()

	if _, _, err := exec.Shortlist(context.Background(), 7, "Munich"); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	name, err := exec.Lock(context.Background(), 7, "munich")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Technical University of Munich" {
		t.Fatalf("unexpected name: %q", name)
	}
	if !shortlistRepo.entries[0].IsLocked {
		t.Fatal("entry not locked")
	}
}

func TestExecutorLockNotShortlisted(t *testing.T) {
	exec, _, _ := executorFixture()

	_, err := exec.Lock(context.Background(), 7, "toronto")
	if err == nil {
		t.Fatal("expected error when locking without a shortlist entry")
	}
	if err.Error() != "'University of Toronto' is not in your shortlist. Please shortlist it first." {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestExecutorLockUnknownUniversity(t *testing.T) {
	exec, _, _ := executorFixture()

	_, err := exec.Lock(context.Background(), 7, "Atlantis")
	if err == nil || err.Error() != "University 'Atlantis' not found." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExecutorAddTask(t *testing.T) {
	exec, _, taskRepo := executorFixture()

	if err := exec.AddTask(context.Background(), 7, "  Draft SOP  ", " First outline "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(taskRepo.tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(taskRepo.tasks))
	}
	task := taskRepo.tasks[0]
	if task.Title != "Draft SOP" || task.Description != "First outline" {
		t.Fatalf("fields not trimmed: %q / %q", task.Title, task.Description)
	}
	if task.Category != domain.TaskCategoryAISuggestion {
		t.Fatalf("expected ai_suggestion category, got %s", task.Category)
	}
}

func TestExecutorAddTaskEmptyTitle(t *testing.T) {
	exec, _, taskRepo := executorFixture()

	err := exec.AddTask(context.Background(), 7, "   ", "desc")
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Fatalf("expected title error, got %v", err)
	}
	if len(taskRepo.tasks) != 0 {
		t.Fatal("task created despite empty title")
	}
}
