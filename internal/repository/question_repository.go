package repository

import (
	"github.com/careerpath-ph/assessment-api/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows admin question listings. Zero values mean "any".
type QuestionFilter struct {
	VersionID uint
	DomainID  uint
	Active    *bool
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithDomain(id uint) (*model.Question, error)
	Update(question *model.Question) error
	FindActiveByVersion(versionID uint) ([]model.Question, error)
	CountActiveByVersion(tx *gorm.DB, versionID uint) (int64, error)
	FindFiltered(filter QuestionFilter) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDWithDomain(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Domain").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) FindActiveByVersion(versionID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Preload("Domain").
		Where("version_id = ? AND active = ?", versionID, true).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountActiveByVersion(tx *gorm.DB, versionID uint) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	var count int64
	err := db.Model(&model.Question{}).
		Where("version_id = ? AND active = ?", versionID, true).
		Count(&count).Error
	return count, err
}

func (r *questionRepository) FindFiltered(filter QuestionFilter) ([]model.Question, error) {
	query := r.db.Preload("Domain")
	if filter.VersionID != 0 {
		query = query.Where("version_id = ?", filter.VersionID)
	}
	if filter.DomainID != 0 {
		query = query.Where("domain_id = ?", filter.DomainID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var questions []model.Question
	err := query.Order("order_index ASC").Find(&questions).Error
	return questions, err
}
