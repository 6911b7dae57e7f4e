package model

import "time"

// DomainScore is the stored per-domain result of the scoring pipeline.
// Fully derived from responses; replaced wholesale on every (re)scoring and
// written in the same transaction that completes the assessment.
type DomainScore struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	AssessmentID    uint      `json:"assessment_id" gorm:"not null;uniqueIndex:idx_score_assessment_domain"`
	DomainID        uint      `json:"domain_id" gorm:"not null;uniqueIndex:idx_score_assessment_domain"`
	Domain          Domain    `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	RawScore        float64   `json:"raw_score" gorm:"not null"`
	NormalizedScore float64   `json:"normalized_score" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
