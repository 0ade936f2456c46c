package services

import (
	"errors"

	"github.com/molarhq/molarlog/internal/models"
)

var (
	ErrAdminPrimaryImmutable = errors.New("primary admin cannot be changed")
	ErrAdminSelfDemotion     = errors.New("admin cannot change own role")
	ErrAdminRoleInvalid      = errors.New("invalid role change")
)

func IsPrimaryAdminUser(user *models.User) bool {
	return user != nil && user.Role == models.RolePrimaryAdmin
}

func IsAdminUser(user *models.User) bool {
	return user != nil && models.IsAdminRole(user.Role)
}

// IsSubscriberUser gates premium features. Admin roles bypass the
// subscription check.
func IsSubscriberUser(user *models.User) bool {
	if user == nil {
		return false
	}
	if models.IsAdminRole(user.Role) {
		return true
	}
	return user.SubscriptionStatus == models.SubscriptionActive
}

// ValidateRoleChange enforces that the primary admin role is never granted
// or revoked and that admins do not change their own role.
func ValidateRoleChange(actor *models.User, target *models.User, newRole string) error {
	if IsPrimaryAdminUser(target) {
		return ErrAdminPrimaryImmutable
	}
	if newRole == models.RolePrimaryAdmin {
		return ErrAdminRoleInvalid
	}
	if newRole != models.RoleAdmin && newRole != models.RoleUser {
		return ErrAdminRoleInvalid
	}
	if actor != nil && target != nil && actor.ID == target.ID {
		return ErrAdminSelfDemotion
	}
	return nil
}

// ValidateSubscriptionChange rejects toggling the primary admin, whose
// access never depends on a subscription.
func ValidateSubscriptionChange(target *models.User, newStatus string) error {
	if IsPrimaryAdminUser(target) {
		return ErrAdminPrimaryImmutable
	}
	if newStatus != models.SubscriptionActive && newStatus != models.SubscriptionInactive {
		return ErrAdminRoleInvalid
	}
	return nil
}

// ValidateAccountRemoval keeps the primary admin account undeletable.
func ValidateAccountRemoval(actor *models.User, target *models.User) error {
	if IsPrimaryAdminUser(target) {
		return ErrAdminPrimaryImmutable
	}
	if actor != nil && target != nil && actor.ID == target.ID {
		return ErrAdminSelfDemotion
	}
	return nil
}
