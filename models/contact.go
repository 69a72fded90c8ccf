package models

import (
	"errors"
	"time"
)

type ContactType string

const (
	ContactTypeCustomer  ContactType = "customer"
	ContactTypeRecipient ContactType = "recipient"
	ContactTypeBoth      ContactType = "both"
)

// ParseContactType maps a raw string to a known contact type.
func ParseContactType(raw string) (ContactType, error) {
	switch ContactType(raw) {
	case ContactTypeCustomer, ContactTypeRecipient, ContactTypeBoth:
		return ContactType(raw), nil
	default:
		return "", errors.New("invalid contact type")
	}
}

// Matches reports whether a contact of this type can serve the wanted role.
// A "both" contact serves either role.
func (t ContactType) Matches(want ContactType) bool {
	return t == want || t == ContactTypeBoth
}

// Contact is a saved buyer or recipient for quick reuse at checkout. The
// usage fields drive the frequent-contacts ordering.
type Contact struct {
	ID         string      `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"not null" json:"name"`
	Phone      string      `gorm:"not null;index" json:"phone"`
	Email      string      `json:"email"`
	Address    string      `json:"address"`
	Type       ContactType `gorm:"type:VARCHAR(10)" json:"type"`
	IsDefault  bool        `json:"is_default"`
	UsageCount int         `json:"usage_count"`
	LastUsedAt *time.Time  `json:"last_used_at"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
