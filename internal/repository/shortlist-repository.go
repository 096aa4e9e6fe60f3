package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

type ShortlistRepository interface {
	Create(entry *domain.ShortlistEntry) error
	ListByUser(userID uint) ([]domain.ShortlistEntry, error)
	FindByID(id, userID uint) (*domain.ShortlistEntry, error)
	FindByUserAndUniversity(userID, universityID uint) (*domain.ShortlistEntry, error)
	CountByUser(userID uint) (int64, error)
	CountLocked(userID uint) (int64, error)
	AnyLocked(userID uint) (bool, error)
	ListLocked(userID uint) ([]domain.ShortlistEntry, error)
	// Delete removes an unlocked entry. Returns rows affected so the
	// service can tell "locked" apart from "missing".
	Delete(id, userID uint) (int64, error)
	UpdateBucket(id, userID uint, bucket string) (int64, error)
	SetLocked(id, userID uint, locked bool) (int64, error)
	// LockByUniversity locks an existing unlocked entry in place and
	// reports whether one matched.
	LockByUniversity(userID, universityID uint) (int64, error)
}

type shortlistRepository struct {
	db *gorm.DB
}

func NewShortlistRepository(db *gorm.DB) ShortlistRepository {
	return &shortlistRepository{db: db}
}

func (s *shortlistRepository) Create(entry *domain.ShortlistEntry) error {
	return s.db.Create(entry).Error
}

func (s *shortlistRepository) ListByUser(userID uint) ([]domain.ShortlistEntry, error) {
	var entries []domain.ShortlistEntry
	err := s.db.Preload("University").Where("user_id = ?", userID).Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *shortlistRepository) FindByID(id, userID uint) (*domain.ShortlistEntry, error) {
	var entry domain.ShortlistEntry
	err := s.db.Preload("University").Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *shortlistRepository) FindByUserAndUniversity(userID, universityID uint) (*domain.ShortlistEntry, error) {
	var entry domain.ShortlistEntry
	err := s.db.Where("user_id = ? AND university_id = ?", userID, universityID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *shortlistRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&domain.ShortlistEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (s *shortlistRepository) CountLocked(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&domain.ShortlistEntry{}).Where("user_id = ? AND is_locked = ?", userID, true).Count(&count).Error
	return count, err
}

func (s *shortlistRepository) AnyLocked(userID uint) (bool, error) {
	count, err := s.CountLocked(userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *shortlistRepository) ListLocked(userID uint) ([]domain.ShortlistEntry, error) {
	var entries []domain.ShortlistEntry
	err := s.db.Preload("University").Where("user_id = ? AND is_locked = ?", userID, true).Order("created_at ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *shortlistRepository) Delete(id, userID uint) (int64, error) {
	res := s.db.Where("id = ? AND user_id = ? AND is_locked = ?", id, userID, false).Delete(&domain.ShortlistEntry{})
	return res.RowsAffected, res.Error
}

func (s *shortlistRepository) UpdateBucket(id, userID uint, bucket string) (int64, error) {
	res := s.db.Model(&domain.ShortlistEntry{}).
		Where("id = ? AND user_id = ? AND is_locked = ?", id, userID, false).
		Update("bucket", bucket)
	return res.RowsAffected, res.Error
}

func (s *shortlistRepository) SetLocked(id, userID uint, locked bool) (int64, error) {
	res := s.db.Model(&domain.ShortlistEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_locked", locked)
	return res.RowsAffected, res.Error
}

func (s *shortlistRepository) LockByUniversity(userID, universityID uint) (int64, error) {
	res := s.db.Model(&domain.ShortlistEntry{}).
		Where("user_id = ? AND university_id = ? AND is_locked = ?", userID, universityID, false).
		Update("is_locked", true)
	return res.RowsAffected, res.Error
}
