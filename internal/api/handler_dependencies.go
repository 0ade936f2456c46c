package api

import (
	"gorm.io/gorm"

	"github.com/molarhq/molarlog/internal/db"
	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	if database == nil {
		return handler
	}
	handler.repositories = db.NewRepositories(database)
	handler.changeFeed = services.NewChangeFeed()
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.logService = services.NewLogService(handler.repositories.ActivityLogs, handler.repositories.Clinics, handler.changeFeed)
	handler.clinicService = services.NewClinicService(handler.repositories.Clinics, handler.changeFeed)
	handler.achievementService = services.NewAchievementService(handler.repositories.Users)
	handler.settingsService = services.NewSettingsService(handler.repositories.Users, handler.changeFeed)
	handler.setupService = services.NewSetupService(handler.repositories.Users)
	handler.exportService = services.NewExportService(handler.repositories.ActivityLogs, handler.repositories.Clinics)
	handler.backupService = services.NewBackupService(handler.repositories.ActivityLogs, handler.repositories.Clinics, handler.changeFeed)
	handler.progressTracker = services.NewProgressTracker(handler.repositories.ActivityLogs, handler.changeFeed)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories != nil {
		return
	}
	handler.withDependencies(handler.db)
}
