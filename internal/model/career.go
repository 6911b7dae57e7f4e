package model

import "time"

// Career is an occupation target scored the same way as a Strand.
type Career struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CareerWeight maps one domain's contribution to a career's score. At most
// one weight per (career, domain) pair.
type CareerWeight struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CareerID  uint      `json:"career_id" gorm:"not null;uniqueIndex:idx_career_weight_pair"`
	Career    Career    `json:"career,omitempty" gorm:"foreignKey:CareerID"`
	DomainID  uint      `json:"domain_id" gorm:"not null;uniqueIndex:idx_career_weight_pair"`
	Domain    Domain    `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	Weight    float64   `json:"weight" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
