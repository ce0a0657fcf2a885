package models

import "time"

// Company is a directory entry for a tracked company. Records are created and
// updated through the directory service, never deleted.
type Company struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	// Company name.
	Name string `gorm:"not null" json:"name"`
	// Ticker symbol of the company. It is unique and stored upper-case.
	Symbol  string `gorm:"uniqueIndex;not null" json:"symbol"`
	Country string `gorm:"not null" json:"country"`
	Website string `json:"website,omitempty"`
	Email   string `gorm:"not null" json:"email"`
}
