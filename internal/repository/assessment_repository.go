package repository

import (
	"time"

	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository interface {
	Create(tx *gorm.DB, assessment *model.Assessment) error
	FindByID(tx *gorm.DB, id uint) (*model.Assessment, error)
	FindByIDWithUser(id uint) (*model.Assessment, error)
	FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Assessment, error)
	FindInProgressByUserLocked(tx *gorm.DB, userID uint) (*model.Assessment, error)
	FindAllByUser(userID uint) ([]model.Assessment, error)
	MarkCompleted(tx *gorm.DB, id uint, completedAt time.Time) error
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
	FindCompletedIDs() ([]uint, error)
	FindRecentWithUser(limit int) ([]model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(tx *gorm.DB, assessment *model.Assessment) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(tx *gorm.DB, id uint) (*model.Assessment, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var assessment model.Assessment
	if err := db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithUser(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("User").Preload("Version").First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// FindByIDForUpdate locks the assessment row for the rest of the
// transaction, so two concurrent scoring attempts serialize on the status
// check. SQLite has no FOR UPDATE; its single-writer transactions give the
// same guarantee.
func (r *assessmentRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Assessment, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var assessment model.Assessment
	if err := db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// FindInProgressByUserLocked looks up the user's in_progress assessment with
// a row lock, for the check-then-insert at assessment start.
func (r *assessmentRepository) FindInProgressByUserLocked(tx *gorm.DB, userID uint) (*model.Assessment, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var assessment model.Assessment
	err := db.Where("user_id = ? AND status = ?", userID, model.StatusInProgress).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllByUser(userID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Preload("Version").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) MarkCompleted(tx *gorm.DB, id uint, completedAt time.Time) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Model(&model.Assessment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       model.StatusCompleted,
			"completed_at": completedAt,
		}).Error
}

func (r *assessmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Assessment{}).Count(&count).Error
	return count, err
}

func (r *assessmentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Assessment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *assessmentRepository) FindCompletedIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Assessment{}).
		Where("status = ?", model.StatusCompleted).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *assessmentRepository) FindRecentWithUser(limit int) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Preload("User").Order("started_at DESC").Limit(limit).Find(&assessments).Error
	return assessments, err
}
