package model

import "time"

// Response is one Likert answer, unique per (assessment, question). Value is
// an integer in [1, domain.max_scale] for the question's domain; bounds are
// validated at submission before anything is written.
type Response struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;uniqueIndex:idx_response_assessment_question"`
	QuestionID   uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_response_assessment_question"`
	Question     Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Value        int       `json:"value" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
