package models

import "time"

// StudioInfo is the single studio record: public contact details plus the
// merchant credential and its lockout state.
type StudioInfo struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `json:"description"`
	Phone              string         `gorm:"not null" json:"phone"`
	Email              string         `json:"email"`
	Address            string         `json:"address"`
	LogoImageName      string         `json:"logo_image_name"`
	DeliveryAvailable  bool           `json:"delivery_available"`
	DeliveryRange      string         `json:"delivery_range"`
	MinimumOrderAmount float64        `json:"minimum_order_amount"`
	BusinessHours      []BusinessHour `gorm:"foreignKey:StudioID;constraint:OnDelete:CASCADE" json:"business_hours"`

	MerchantPassword string     `json:"-"`
	LoginAttempts    int        `json:"-"`
	IsLocked         bool       `json:"-"`
	LastLoginAt      *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessHour is one weekday's opening window.
type BusinessHour struct {
	ID          uint         `gorm:"primaryKey" json:"-"`
	StudioID    uint         `gorm:"index" json:"-"`
	DayOfWeek   time.Weekday `json:"day_of_week"` // 0 = Sunday
	OpenHour    int          `json:"open_hour"`
	OpenMinute  int          `json:"open_minute"`
	CloseHour   int          `json:"close_hour"`
	CloseMinute int          `json:"close_minute"`
	IsClosed    bool         `json:"is_closed"`
}

// IsOpenAt reports whether the studio is open at the given time.
func (s *StudioInfo) IsOpenAt(t time.Time) bool {
	for _, h := range s.BusinessHours {
		if h.DayOfWeek != t.Weekday() || h.IsClosed {
			continue
		}
		minutes := t.Hour()*60 + t.Minute()
		open := h.OpenHour*60 + h.OpenMinute
		close := h.CloseHour*60 + h.CloseMinute
		if minutes >= open && minutes < close {
			return true
		}
	}
	return false
}
