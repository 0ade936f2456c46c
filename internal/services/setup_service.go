package services

type SetupUserRepository interface {
	CountUsers() (int64, error)
}

// SetupService answers whether the instance is still untouched. Registration
// routes this to hand the very first account the primary admin role.
type SetupService struct {
	users SetupUserRepository
}

func NewSetupService(users SetupUserRepository) *SetupService {
	return &SetupService{users: users}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
