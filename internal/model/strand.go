package model

import "time"

// Strand is an academic-track target (STEM, ABM, HUMSS, ...) scored by a
// weighted combination of domain scores.
type Strand struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StrandWeight maps one domain's contribution to a strand's score. At most
// one weight per (strand, domain) pair.
type StrandWeight struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StrandID  uint      `json:"strand_id" gorm:"not null;uniqueIndex:idx_strand_weight_pair"`
	Strand    Strand    `json:"strand,omitempty" gorm:"foreignKey:StrandID"`
	DomainID  uint      `json:"domain_id" gorm:"not null;uniqueIndex:idx_strand_weight_pair"`
	Domain    Domain    `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	Weight    float64   `json:"weight" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
