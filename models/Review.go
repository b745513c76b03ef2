package models

import (
	"fmt"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	PropertyID uint   `json:"propertyID" gorm:"not null;index"`
	UserID     uint   `json:"userID" gorm:"not null;index"`
	BookingID  *uint  `json:"bookingID" gorm:"index"` // optional link to the stay being reviewed
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string `json:"comment" gorm:"type:text"`
	IsVerified bool   `json:"isVerified" gorm:"default:false"` // reviewer completed a stay here

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Booking  *Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (r *Review) Validate() error {
	if r.PropertyID == 0 || r.UserID == 0 {
		return fmt.Errorf("%w: review property and user are required", ErrNotNullViolation)
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5, got %d", ErrDomainCheckViolation, r.Rating)
	}
	return nil
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
