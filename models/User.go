package models

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

var UserRoles = []string{RoleGuest, RoleHost, RoleAdmin}

type User struct {
	gorm.Model
	FirstName      string `json:"firstName" gorm:"not null"`
	LastName       string `json:"lastName" gorm:"not null"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	Password       string `json:"-"`
	PhoneNumber    string `json:"phoneNumber"`
	SocialLogin    bool   `json:"socialLogin"`
	SocialProvider string `json:"socialProvider"`
	Role           string `json:"role" gorm:"type:varchar(20);default:'guest';index;check:role IN ('guest','host','admin')"` // guest, host, admin

	Properties     []Property      `json:"properties,omitempty" gorm:"foreignKey:OwnerID"`
	Bookings       []Booking       `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: user email is required", ErrNotNullViolation)
	}
	if u.Role != "" && !slices.Contains(UserRoles, u.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrDomainCheckViolation, u.Role)
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}
