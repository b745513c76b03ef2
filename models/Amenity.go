package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Amenity struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Icon string `json:"icon"` // Phosphor icon name

	Properties []Property `json:"properties,omitempty" gorm:"many2many:property_amenities"`
}

func (a *Amenity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: amenity name is required", ErrNotNullViolation)
	}
	return nil
}

func (a *Amenity) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}

// PropertyAmenity is the Property<->Amenity join table. The composite primary
// key doubles as the uniqueness constraint, and each half is indexed so the
// relation can be walked from either side.
type PropertyAmenity struct {
	PropertyID uint      `json:"propertyID" gorm:"primaryKey;autoIncrement:false;index"`
	AmenityID  uint      `json:"amenityID" gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt  time.Time `json:"createdAt"`
}
