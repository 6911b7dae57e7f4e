package repository

import (
	"gorm.io/gorm"
)

// WeightRow is one edge of a weight table joined with its target's metadata.
// The same shape serves both strand and career tables so the ranker stays
// target-agnostic.
type WeightRow struct {
	TargetID    uint    `json:"target_id"`
	TargetName  string  `json:"target_name"`
	Description string  `json:"description"`
	DomainID    uint    `json:"domain_id"`
	Weight      float64 `json:"weight"`
}

type WeightRepository interface {
	StrandWeights() ([]WeightRow, error)
	CareerWeights() ([]WeightRow, error)
}

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) StrandWeights() ([]WeightRow, error) {
	var rows []WeightRow
	err := r.db.Table("strand_weights").
		Select("strand_weights.strand_id AS target_id, strands.name AS target_name, strands.description AS description, strand_weights.domain_id AS domain_id, strand_weights.weight AS weight").
		Joins("JOIN strands ON strands.id = strand_weights.strand_id").
		Order("strand_weights.strand_id ASC, strand_weights.domain_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *weightRepository) CareerWeights() ([]WeightRow, error) {
	var rows []WeightRow
	err := r.db.Table("career_weights").
		Select("career_weights.career_id AS target_id, careers.name AS target_name, careers.description AS description, career_weights.domain_id AS domain_id, career_weights.weight AS weight").
		Joins("JOIN careers ON careers.id = career_weights.career_id").
		Order("career_weights.career_id ASC, career_weights.domain_id ASC").
		Scan(&rows).Error
	return rows, err
}
