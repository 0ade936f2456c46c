package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Clinics      *ClinicRepository
	ActivityLogs *ActivityLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Clinics:      NewClinicRepository(database),
		ActivityLogs: NewActivityLogRepository(database),
	}
}
