package models

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	MethodCreditCard   = "credit_card"
	MethodPaypal       = "paypal"
	MethodBankTransfer = "bank_transfer"
)

var PaymentMethodTypes = []string{MethodCreditCard, MethodPaypal, MethodBankTransfer}

type PaymentMethod struct {
	gorm.Model
	UserID     uint   `json:"userID" gorm:"not null;index"`
	MethodType string `json:"methodType" gorm:"type:varchar(20);not null;check:method_type IN ('credit_card','paypal','bank_transfer')"` // credit_card, paypal, bank_transfer
	Label      string `json:"label"`                                                                                                     // e.g. "Visa ending 4242"
	IsDefault  bool   `json:"isDefault" gorm:"default:false"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:PaymentMethodID"`
}

func (pm *PaymentMethod) Validate() error {
	if pm.UserID == 0 {
		return fmt.Errorf("%w: payment method user is required", ErrNotNullViolation)
	}
	if !slices.Contains(PaymentMethodTypes, pm.MethodType) {
		return fmt.Errorf("%w: unknown payment method type %q", ErrDomainCheckViolation, pm.MethodType)
	}
	return nil
}

func (pm *PaymentMethod) BeforeSave(tx *gorm.DB) error {
	return pm.Validate()
}
