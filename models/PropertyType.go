package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// PropertyType is a lookup table (entire_place, private_room, shared_room, ...).
// Kept as its own entity so the type description lives with the type, not on
// every property that shares it.
type PropertyType struct {
	gorm.Model
	TypeName    string `json:"typeName" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:PropertyTypeID"`
}

func (pt *PropertyType) Validate() error {
	if strings.TrimSpace(pt.TypeName) == "" {
		return fmt.Errorf("%w: property type name is required", ErrNotNullViolation)
	}
	return nil
}

func (pt *PropertyType) BeforeSave(tx *gorm.DB) error {
	return pt.Validate()
}
