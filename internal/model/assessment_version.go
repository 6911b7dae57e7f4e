package model

import "time"

// AssessmentVersion groups a question set. Several rows may be flagged
// active; the "current" version for new attempts is the active row with the
// highest id (see VersionRepository.FindCurrent).
type AssessmentVersion struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"not null;default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
