package models

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// Payment settles exactly one booking. The unique index on BookingID keeps
// the relationship 1:1; partial payments would need that index dropped.
type Payment struct {
	gorm.Model
	BookingID       uint       `json:"bookingID" gorm:"uniqueIndex;not null"`
	PaymentMethodID uint       `json:"paymentMethodID" gorm:"not null;index"`
	Amount          float64    `json:"amount" gorm:"not null;check:amount > 0"`
	Status          string     `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','completed','failed','refunded')"` // pending, completed, failed, refunded
	TransactionID   string     `json:"transactionID" gorm:"size:64;uniqueIndex"`
	PaidAt          *time.Time `json:"paidAt"`

	Booking       *Booking       `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty" gorm:"foreignKey:PaymentMethodID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (p *Payment) Validate() error {
	if p.BookingID == 0 || p.PaymentMethodID == 0 {
		return fmt.Errorf("%w: payment booking and method are required", ErrNotNullViolation)
	}
	if p.Amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive, got %v", ErrDomainCheckViolation, p.Amount)
	}
	if p.Status != "" && !slices.Contains(PaymentStatuses, p.Status) {
		return fmt.Errorf("%w: unknown payment status %q", ErrDomainCheckViolation, p.Status)
	}
	return nil
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
