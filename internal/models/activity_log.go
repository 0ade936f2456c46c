package models

import "time"

const (
	TypeShadowing             = "Shadowing"
	TypeDentalVolunteering    = "Dental Volunteering"
	TypeNonDentalVolunteering = "Non-Dental Volunteering"
)

// ActivityLog is a single recorded shadowing or volunteering session.
// ClinicID is a weak reference: the clinic may have been deleted, and read
// paths substitute a placeholder name in that case.
type ActivityLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"-"`
	ClinicID       *uint     `gorm:"index" json:"clinic_id,omitempty"`
	Date           time.Time `gorm:"type:date;not null;index" json:"date"`
	Duration       float64   `gorm:"not null" json:"duration"`
	Type           string    `gorm:"not null" json:"type"`
	Supervisor     string    `json:"supervisor,omitempty"`
	Procedures     string    `json:"procedures,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	AttachmentName string    `json:"attachment_name,omitempty"`
	Attachment     []byte    `json:"attachment,omitempty"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func ActivityTypes() []string {
	return []string{TypeShadowing, TypeDentalVolunteering, TypeNonDentalVolunteering}
}

func IsValidActivityType(activityType string) bool {
	switch activityType {
	case TypeShadowing, TypeDentalVolunteering, TypeNonDentalVolunteering:
		return true
	default:
		return false
	}
}
