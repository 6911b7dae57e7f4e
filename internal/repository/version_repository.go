package repository

import (
	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
)

type VersionRepository interface {
	FindCurrent(tx *gorm.DB) (*model.AssessmentVersion, error)
	FindAll() ([]model.AssessmentVersion, error)
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

// FindCurrent returns the version new attempts should use. Several rows may
// be flagged active; the authoritative tie-break is highest id wins.
// Pass a transaction handle to read inside it, or nil for the base handle.
func (r *versionRepository) FindCurrent(tx *gorm.DB) (*model.AssessmentVersion, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var version model.AssessmentVersion
	err := db.Where("active = ?", true).Order("id DESC").First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *versionRepository) FindAll() ([]model.AssessmentVersion, error) {
	var versions []model.AssessmentVersion
	err := r.db.Order("id DESC").Find(&versions).Error
	return versions, err
}
