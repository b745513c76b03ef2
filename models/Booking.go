package models

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
	BookingStatusCompleted = "completed"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCanceled,
	BookingStatusCompleted,
}

type Booking struct {
	gorm.Model
	PropertyID uint      `json:"propertyID" gorm:"not null;index"`
	UserID     uint      `json:"userID" gorm:"not null;index"`
	StartDate  time.Time `json:"startDate" gorm:"not null"`
	EndDate    time.Time `json:"endDate" gorm:"not null;check:end_date > start_date"`
	NumGuests  int       `json:"numGuests" gorm:"default:1"`
	TotalPrice float64   `json:"totalPrice" gorm:"not null;check:total_price >= 0"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'pending';index;check:status IN ('pending','confirmed','canceled','completed')"` // pending, confirmed, canceled, completed

	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Payment  *Payment  `json:"payment,omitempty" gorm:"foreignKey:BookingID"`
}

// Nights returns the stay length in whole nights.
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// CanTransitionTo reports whether the status change is allowed. Terminal
// states (canceled, completed) accept no further transitions.
func (b *Booking) CanTransitionTo(next string) bool {
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCanceled
	case BookingStatusConfirmed:
		return next == BookingStatusCanceled || next == BookingStatusCompleted
	default:
		return false
	}
}

func (b *Booking) Validate() error {
	if b.PropertyID == 0 || b.UserID == 0 {
		return fmt.Errorf("%w: booking property and user are required", ErrNotNullViolation)
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return fmt.Errorf("%w: booking dates are required", ErrNotNullViolation)
	}
	if !b.EndDate.After(b.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrDomainCheckViolation)
	}
	if b.TotalPrice < 0 {
		return fmt.Errorf("%w: total price must not be negative, got %v", ErrDomainCheckViolation, b.TotalPrice)
	}
	if b.Status != "" && !slices.Contains(BookingStatuses, b.Status) {
		return fmt.Errorf("%w: unknown booking status %q", ErrDomainCheckViolation, b.Status)
	}
	return nil
}

func (b *Booking) BeforeSave(tx *gorm.DB) error {
	return b.Validate()
}
