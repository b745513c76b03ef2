package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	SenderID    uint       `json:"senderID" gorm:"not null;index;check:chk_message_participants,sender_id <> recipient_id"`
	RecipientID uint       `json:"recipientID" gorm:"not null;index"`
	BookingID   *uint      `json:"bookingID" gorm:"index"` // optional booking context
	ReviewID    *uint      `json:"reviewID" gorm:"index"`  // optional review context
	Subject     string     `json:"subject" gorm:"size:256"`
	Body        string     `json:"body" gorm:"type:text;not null"`
	IsRead      bool       `json:"isRead" gorm:"default:false;index"`
	ReadAt      *time.Time `json:"readAt"`

	Sender    *User    `json:"sender,omitempty" gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Recipient *User    `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Booking   *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Review    *Review  `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (m *Message) Validate() error {
	if m.SenderID == 0 || m.RecipientID == 0 {
		return fmt.Errorf("%w: message sender and recipient are required", ErrNotNullViolation)
	}
	if m.SenderID == m.RecipientID {
		return fmt.Errorf("%w: sender and recipient must differ", ErrDomainCheckViolation)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("%w: message body is required", ErrNotNullViolation)
	}
	return nil
}

func (m *Message) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
