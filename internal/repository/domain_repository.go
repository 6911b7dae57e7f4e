package repository

import (
	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
)

type DomainRepository interface {
	FindAll() ([]model.Domain, error)
	MaxScaleByID(tx *gorm.DB) (map[uint]int, error)
}

type domainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) DomainRepository {
	return &domainRepository{db: db}
}

func (r *domainRepository) FindAll() ([]model.Domain, error) {
	var domains []model.Domain
	err := r.db.Order("family ASC, id ASC").Find(&domains).Error
	return domains, err
}

// MaxScaleByID returns the Likert ceiling for every domain, keyed by id.
func (r *domainRepository) MaxScaleByID(tx *gorm.DB) (map[uint]int, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var domains []model.Domain
	if err := db.Order("family ASC, id ASC").Find(&domains).Error; err != nil {
		return nil, err
	}
	scales := make(map[uint]int, len(domains))
	for _, d := range domains {
		scales[d.ID] = d.MaxScale
	}
	return scales, nil
}
