package models

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	OwnerID        uint           `json:"ownerID" gorm:"not null;index"`
	Name           string         `json:"name" gorm:"not null"`
	Description    string         `json:"description" gorm:"type:text"`
	LocationID     uint           `json:"locationID" gorm:"not null;index"`
	PropertyTypeID uint           `json:"propertyTypeID" gorm:"not null;index"`
	PricePerNight  float64        `json:"pricePerNight" gorm:"not null;check:price_per_night > 0"`
	MaxGuests      int            `json:"maxGuests" gorm:"default:1"`
	Images         datatypes.JSON `json:"images"`

	// A property with live bookings must not disappear underneath them, so
	// the inbound references restrict deletes rather than cascade.
	Owner        *User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Location     *Location     `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PropertyType *PropertyType `json:"propertyType,omitempty" gorm:"foreignKey:PropertyTypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Amenities    []Amenity     `json:"amenities,omitempty" gorm:"many2many:property_amenities"`
	Bookings     []Booking     `json:"bookings,omitempty" gorm:"foreignKey:PropertyID"`
	Reviews      []Review      `json:"reviews,omitempty" gorm:"foreignKey:PropertyID"`
}

func (p *Property) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: property name is required", ErrNotNullViolation)
	}
	if p.OwnerID == 0 {
		return fmt.Errorf("%w: property owner is required", ErrNotNullViolation)
	}
	if p.LocationID == 0 || p.PropertyTypeID == 0 {
		return fmt.Errorf("%w: property location and type are required", ErrNotNullViolation)
	}
	if p.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive, got %v", ErrDomainCheckViolation, p.PricePerNight)
	}
	return nil
}

func (p *Property) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
