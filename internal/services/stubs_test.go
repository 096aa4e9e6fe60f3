package services

import (
	"context"
	"strings"
	"time"

	"github.com/unipath/counsel-svc/internal/ai"
	"github.com/unipath/counsel-svc/internal/domain"
	"github.com/unipath/counsel-svc/internal/match"
	"github.com/unipath/counsel-svc/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository stand-ins. They return gorm sentinel errors so the
// helper predicates behave exactly as with the real store.

type stubUserRepo struct {
	users map[uint]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	s := &stubUserRepo{users: map[uint]*domain.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = uint(len(s.users) + 1)
	s.users[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindUserByID(id uint) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindUserByVerificationTokenHash(hash string) (*domain.User, error) {
	for _, u := range s.users {
		if u.VerificationToken == hash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindUserByResetTokenHash(hash string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ResetTokenHash == hash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) SaveUser(user *domain.User) error {
	s.users[user.ID] = user
	return nil
}

type stubProfileRepo struct {
	profiles map[uint]*domain.StudentProfile
}

func newStubProfileRepo(profiles ...*domain.StudentProfile) *stubProfileRepo {
	s := &stubProfileRepo{profiles: map[uint]*domain.StudentProfile{}}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *stubProfileRepo) Upsert(profile *domain.StudentProfile) error {
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *stubProfileRepo) FindByUserID(userID uint) (*domain.StudentProfile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProfileRepo) Exists(userID uint) (bool, error) {
	_, ok := s.profiles[userID]
	return ok, nil
}

type stubUniversityRepo struct {
	universities []domain.University
}

func (s *stubUniversityRepo) FindByID(id uint) (*domain.University, error) {
	for i := range s.universities {
		if s.universities[i].ID == id {
			return &s.universities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUniversityRepo) FindByNameLike(name string) (*domain.University, error) {
	needle := strings.ToLower(name)
	for i := range s.universities {
		if strings.Contains(strings.ToLower(s.universities[i].Name), needle) {
			return &s.universities[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUniversityRepo) List() ([]domain.University, error) {
	return s.universities, nil
}

func (s *stubUniversityRepo) Search(filter repository.UniversityFilter) ([]domain.University, error) {
	var out []domain.University
	for _, u := range s.universities {
		if filter.Country != "" && u.Country != filter.Country {
			continue
		}
		if filter.HasScholarships != nil && u.HasScholarships != *filter.HasScholarships {
			continue
		}
		if filter.MaxMinGPA != nil && (u.MinGPA == nil || *u.MinGPA > *filter.MaxMinGPA) {
			continue
		}
		if filter.NameSearch != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.NameSearch)) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUniversityRepo) Add(university *domain.University) error {
	university.ID = uint(len(s.universities) + 1)
	s.universities = append(s.universities, *university)
	return nil
}

type stubShortlistRepo struct {
	entries []domain.ShortlistEntry
	nextID  uint
}

func (s *stubShortlistRepo) Create(entry *domain.ShortlistEntry) error {
	for _, e := range s.entries {
		if e.UserID == entry.UserID && e.UniversityID == entry.UniversityID {
			return gorm.ErrDuplicatedKey
		}
	}
	s.nextID++
	entry.ID = s.nextID
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubShortlistRepo) ListByUser(userID uint) ([]domain.ShortlistEntry, error) {
	var out []domain.ShortlistEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubShortlistRepo) FindByID(id, userID uint) (*domain.ShortlistEntry, error) {
	for i := range s.entries {
		if s.entries[i].ID == id && s.entries[i].UserID == userID {
			return &s.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubShortlistRepo) FindByUserAndUniversity(userID, universityID uint) (*domain.ShortlistEntry, error) {
	for i := range s.entries {
		if s.entries[i].UserID == userID && s.entries[i].UniversityID == universityID {
			return &s.entries[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubShortlistRepo) CountByUser(userID uint) (int64, error) {
	var n int64
	for _, e := range s.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *stubShortlistRepo) CountLocked(userID uint) (int64, error) {
	var n int64
	for _, e := range s.entries {
		if e.UserID == userID && e.IsLocked {
			n++
		}
	}
	return n, nil
}

func (s *stubShortlistRepo) AnyLocked(userID uint) (bool, error) {
	n, _ := s.CountLocked(userID)
	return n > 0, nil
}

func (s *stubShortlistRepo) ListLocked(userID uint) ([]domain.ShortlistEntry, error) {
	var out []domain.ShortlistEntry
	for _, e := range s.entries {
		if e.UserID == userID && e.IsLocked {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubShortlistRepo) Delete(id, userID uint) (int64, error) {
	for i, e := range s.entries {
		if e.ID == id && e.UserID == userID && !e.IsLocked {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubShortlistRepo) UpdateBucket(id, userID uint, bucket string) (int64, error) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.ID == id && e.UserID == userID && !e.IsLocked {
			e.Bucket = bucket
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubShortlistRepo) SetLocked(id, userID uint, locked bool) (int64, error) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.ID == id && e.UserID == userID {
			e.IsLocked = locked
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubShortlistRepo) LockByUniversity(userID, universityID uint) (int64, error) {
	for i := range s.entries {
		e := &s.entries[i]
		if e.UserID == userID && e.UniversityID == universityID && !e.IsLocked {
			e.IsLocked = true
			return 1, nil
		}
	}
	return 0, nil
}

type stubTaskRepo struct {
	tasks  []domain.Task
	nextID uint
}

func (s *stubTaskRepo) Create(task *domain.Task) error {
	s.nextID++
	task.ID = s.nextID
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *stubTaskRepo) CreateBatch(tasks []domain.Task) error {
	for i := range tasks {
		if err := s.Create(&tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubTaskRepo) ListByUser(userID uint) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTaskRepo) Complete(id, userID uint) (int64, error) {
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.ID == id && t.UserID == userID {
			now := time.Now()
			t.IsComplete = true
			t.CompletedAt = &now
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubTaskRepo) CountByUser(userID uint) (int64, error) {
	var n int64
	for _, t := range s.tasks {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

type stubStageRepo struct {
	stages  map[uint]string
	upserts int
}

func newStubStageRepo() *stubStageRepo {
	return &stubStageRepo{stages: map[uint]string{}}
}

func (s *stubStageRepo) Get(userID uint) (*domain.UserStage, error) {
	if st, ok := s.stages[userID]; ok {
		return &domain.UserStage{UserID: userID, CurrentStage: st}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStageRepo) Upsert(userID uint, stage string) error {
	s.stages[userID] = stage
	s.upserts++
	return nil
}

type stubChatRepo struct {
	messages []domain.ChatMessage
}

func (s *stubChatRepo) Create(message *domain.ChatMessage) error {
	message.ID = uint(len(s.messages) + 1)
	s.messages = append(s.messages, *message)
	return nil
}

func (s *stubChatRepo) ListByUser(userID uint, limit int) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubProducer struct {
	keys   []string
	values []string
	err    error
}

func (s *stubProducer) PublishMessage(key, value []byte) error {
	if s.err != nil {
		return s.err
	}
	s.keys = append(s.keys, string(key))
	s.values = append(s.values, string(value))
	return nil
}

type stubOracle struct {
	result match.Result
	calls  int
}

func (s *stubOracle) Evaluate(_ context.Context, _ string, _ *domain.StudentProfile, _ *domain.University) match.Result {
	s.calls++
	return s.result
}

type stubSuggester struct {
	suggestions []ai.TaskSuggestion
}

func (s *stubSuggester) InitialTasks(_ context.Context, _ string, _ *domain.StudentProfile, _ string) []ai.TaskSuggestion {
	return s.suggestions
}

func fptr(f float64) *float64 { return &f }
