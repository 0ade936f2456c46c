package models

import "time"

const (
	RolePrimaryAdmin = "primary_admin"
	RoleAdmin        = "admin"
	RoleUser         = "user"
)

const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

const (
	DefaultTargetShadowing = 100
	DefaultTargetDental    = 100
	DefaultTargetNonDental = 150
)

type User struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Email              string `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName        string `json:"display_name"`
	PasswordHash       string `gorm:"not null" json:"-"`
	RecoveryCodeHash   string `json:"-"`
	MustChangePassword bool   `gorm:"not null;default:false" json:"-"`
	Role               string `gorm:"not null;default:user" json:"role"`
	SubscriptionStatus string `gorm:"not null;default:inactive" json:"subscription_status"`

	TargetShadowing int `gorm:"not null;default:100" json:"target_shadowing"`
	TargetDental    int `gorm:"not null;default:100" json:"target_dental"`
	TargetNonDental int `gorm:"not null;default:150" json:"target_non_dental"`

	// One-time milestone flags. Monotonic: set once, never cleared by
	// editing hours downward.
	ShadowingTargetMet bool `gorm:"not null;default:false" json:"shadowing_target_met"`
	DentalTargetMet    bool `gorm:"not null;default:false" json:"dental_target_met"`
	NonDentalTargetMet bool `gorm:"not null;default:false" json:"non_dental_target_met"`
	CombinedTargetMet  bool `gorm:"not null;default:false" json:"combined_target_met"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// CombinedTargetHours is the legacy "total target" value. It is derived from
// the three category targets and never stored, so the stored values cannot
// drift from the total.
func (user User) CombinedTargetHours() int {
	return user.TargetShadowing + user.TargetDental + user.TargetNonDental
}

func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RolePrimaryAdmin
}
