package repository

import (
	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
)

// FamilyAverage is one row of the per-domain score average used by the
// analytics dashboard.
type FamilyAverage struct {
	DomainID   uint    `json:"domain_id"`
	DomainName string  `json:"name"`
	AvgScore   float64 `json:"avg_score"`
}

type DomainScoreRepository interface {
	ReplaceForAssessment(tx *gorm.DB, assessmentID uint, scores []model.DomainScore) error
	FindByAssessment(assessmentID uint) ([]model.DomainScore, error)
	AverageByFamily(family string) ([]FamilyAverage, error)
}

type domainScoreRepository struct {
	db *gorm.DB
}

func NewDomainScoreRepository(db *gorm.DB) DomainScoreRepository {
	return &domainScoreRepository{db: db}
}

// ReplaceForAssessment deletes every stored score row for the assessment and
// inserts the new set. Full replacement keeps rescoring idempotent and
// leaves no stale per-domain rows behind. Must run inside the scoring
// transaction.
func (r *domainScoreRepository) ReplaceForAssessment(tx *gorm.DB, assessmentID uint, scores []model.DomainScore) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	if err := db.Where("assessment_id = ?", assessmentID).Delete(&model.DomainScore{}).Error; err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}
	return db.Create(&scores).Error
}

func (r *domainScoreRepository) FindByAssessment(assessmentID uint) ([]model.DomainScore, error) {
	var scores []model.DomainScore
	err := r.db.Preload("Domain").
		Where("assessment_id = ?", assessmentID).
		Order("domain_id ASC").
		Find(&scores).Error
	return scores, err
}

func (r *domainScoreRepository) AverageByFamily(family string) ([]FamilyAverage, error) {
	var rows []FamilyAverage
	err := r.db.Table("domain_scores").
		Select("domains.id AS domain_id, domains.name AS domain_name, AVG(domain_scores.normalized_score) AS avg_score").
		Joins("JOIN domains ON domains.id = domain_scores.domain_id").
		Where("domains.family = ?", family).
		Group("domains.id, domains.name").
		Order("domains.id ASC").
		Scan(&rows).Error
	return rows, err
}
