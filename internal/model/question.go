package model

import "time"

// Question belongs to one assessment version and one domain. Questions are
// deactivated, never deleted, so historical responses stay resolvable.
type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	VersionID  uint      `json:"version_id" gorm:"not null;index"`
	DomainID   uint      `json:"domain_id" gorm:"not null;index"`
	Domain     Domain    `json:"domain,omitempty" gorm:"foreignKey:DomainID"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	OrderIndex int       `json:"order_index" gorm:"not null"`
	Active     bool      `json:"active" gorm:"not null;default:true;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
