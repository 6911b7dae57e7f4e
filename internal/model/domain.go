package model

import "time"

// Domain families. MI domains use a 1-5 Likert scale, RIASEC domains 1-3.
const (
	FamilyMI     = "MI"
	FamilyRIASEC = "RIASEC"
)

// Domain is a single scored trait (an intelligence type or an interest
// type). Reference data, immutable at scoring time.
type Domain struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_domain_name_family"`
	Family      string    `json:"family" gorm:"not null;uniqueIndex:idx_domain_name_family;index"`
	MaxScale    int       `json:"max_scale" gorm:"not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
