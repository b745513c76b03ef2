package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Location is a lookup table extracted from Property so the address columns
// depend on their own key instead of riding along on every listing row.
type Location struct {
	gorm.Model
	City    string `json:"city" gorm:"not null;index"`
	State   string `json:"state"`
	Country string `json:"country" gorm:"not null"`
	Zip     string `json:"zip" gorm:"size:20"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:LocationID"`
}

func (l *Location) Validate() error {
	if strings.TrimSpace(l.City) == "" || strings.TrimSpace(l.Country) == "" {
		return fmt.Errorf("%w: location city and country are required", ErrNotNullViolation)
	}
	return nil
}

func (l *Location) BeforeSave(tx *gorm.DB) error {
	return l.Validate()
}
