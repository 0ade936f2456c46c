package models

const (
	ClinicStatusToContact          = "To Contact"
	ClinicStatusContacted          = "Contacted"
	ClinicStatusShadowing          = "Shadowing"
	ClinicStatusDentalVolunteering = "Dental Volunteering"
	ClinicStatusNonDentalVolunteer = "Non-Dental Volunteering"
	ClinicStatusRejected           = "Rejected"
)

type Clinic struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;index" json:"-"`
	Name      string  `gorm:"not null" json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Website   string  `json:"website,omitempty"`
	Status    string  `gorm:"not null;default:To Contact" json:"status"`
	Notes     string  `json:"notes,omitempty"`
}

func ClinicStatuses() []string {
	return []string{
		ClinicStatusToContact,
		ClinicStatusContacted,
		ClinicStatusShadowing,
		ClinicStatusDentalVolunteering,
		ClinicStatusNonDentalVolunteer,
		ClinicStatusRejected,
	}
}

func IsValidClinicStatus(status string) bool {
	for _, candidate := range ClinicStatuses() {
		if candidate == status {
			return true
		}
	}
	return false
}

// IsEngagedClinicStatus reports whether the clinic has moved past the
// "To Contact" stage without being rejected.
func IsEngagedClinicStatus(status string) bool {
	switch status {
	case ClinicStatusContacted, ClinicStatusShadowing, ClinicStatusDentalVolunteering, ClinicStatusNonDentalVolunteer:
		return true
	default:
		return false
	}
}
