package model

import "time"

// Assessment statuses. There is no persisted "scoring" state: scoring is the
// duration of one transaction that moves in_progress to completed.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// Assessment is one attempt by a user against a question version. A user has
// at most one in_progress assessment at a time.
type Assessment struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	UserID      uint              `json:"user_id" gorm:"not null;index"`
	User        User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	VersionID   uint              `json:"version_id" gorm:"not null;index"`
	Version     AssessmentVersion `json:"version,omitempty" gorm:"foreignKey:VersionID"`
	Status      string            `json:"status" gorm:"not null;default:'in_progress';index"`
	StartedAt   time.Time         `json:"started_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
