package repository

import (
	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
)

// DomainAggregate is one row of the grouped response query: the raw sum and
// contributing response count for a single domain.
type DomainAggregate struct {
	DomainID      uint    `json:"domain_id"`
	RawScore      float64 `json:"raw_score"`
	QuestionCount int     `json:"question_count"`
}

type ResponseRepository interface {
	ReplaceForAssessment(assessmentID uint, responses []model.Response) error
	FindByAssessment(assessmentID uint) ([]model.Response, error)
	AggregateByDomain(tx *gorm.DB, assessmentID, versionID uint) ([]DomainAggregate, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// ReplaceForAssessment swaps the assessment's full response set in one
// transaction: delete everything, insert the new rows.
func (r *responseRepository) ReplaceForAssessment(assessmentID uint, responses []model.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", assessmentID).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		if len(responses) == 0 {
			return nil
		}
		return tx.Create(&responses).Error
	})
}

func (r *responseRepository) FindByAssessment(assessmentID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("assessment_id = ?", assessmentID).Find(&responses).Error
	return responses, err
}

// AggregateByDomain groups the assessment's responses by the answered
// question's domain, restricted to questions of the given version.
func (r *responseRepository) AggregateByDomain(tx *gorm.DB, assessmentID, versionID uint) ([]DomainAggregate, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var rows []DomainAggregate
	err := db.Table("responses").
		Select("questions.domain_id AS domain_id, SUM(responses.value) AS raw_score, COUNT(responses.id) AS question_count").
		Joins("JOIN questions ON questions.id = responses.question_id").
		Where("responses.assessment_id = ? AND questions.version_id = ?", assessmentID, versionID).
		Group("questions.domain_id").
		Order("questions.domain_id ASC").
		Scan(&rows).Error
	return rows, err
}
