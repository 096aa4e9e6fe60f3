package repository

import (
	"github.com/unipath/counsel-svc/internal/domain"
	"gorm.io/gorm"
)

// UniversityFilter narrows the catalog search. Budget and field filtering
// happen in the service because they need the computed total cost and
// program-list matching.
type UniversityFilter struct {
	Country         string
	HasScholarships *bool
	MaxMinGPA       *float64
	NameSearch      string
}

type UniversityRepository interface {
	FindByID(id uint) (*domain.University, error)
	// FindByNameLike does a case-insensitive substring lookup and returns
	// the first match.
	FindByNameLike(name string) (*domain.University, error)
	List() ([]domain.University, error)
	Search(filter UniversityFilter) ([]domain.University, error)
	Add(university *domain.University) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (u *universityRepository) FindByID(id uint) (*domain.University, error) {
	var university domain.University
	if err := u.db.First(&university, id).Error; err != nil {
		return nil, err
	}
	return &university, nil
}

func (u *universityRepository) FindByNameLike(name string) (*domain.University, error) {
	var university domain.University
	err := u.db.Where("name ILIKE ?", "%"+name+"%").Order("id ASC").First(&university).Error
	if err != nil {
		return nil, err
	}
	return &university, nil
}

func (u *universityRepository) List() ([]domain.University, error) {
	var universities []domain.University
	if err := u.db.Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func (u *universityRepository) Search(filter UniversityFilter) ([]domain.University, error) {
	q := u.db.Model(&domain.University{})

	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.HasScholarships != nil {
		q = q.Where("has_scholarships = ?", *filter.HasScholarships)
	}
	if filter.MaxMinGPA != nil {
		q = q.Where("min_gpa <= ?", *filter.MaxMinGPA)
	}
	if filter.NameSearch != "" {
		q = q.Where("name ILIKE ?", "%"+filter.NameSearch+"%")
	}

	var universities []domain.University
	if err := q.Order("name ASC").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}

func (u *universityRepository) Add(university *domain.University) error {
	return u.db.Create(university).Error
}
