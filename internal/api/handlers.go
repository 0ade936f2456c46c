package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/molarhq/molarlog/internal/db"
	"github.com/molarhq/molarlog/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	changeFeed         *services.ChangeFeed
	authService        *services.AuthService
	logService         *services.LogService
	clinicService      *services.ClinicService
	achievementService *services.AchievementService
	settingsService    *services.SettingsService
	setupService       *services.SetupService
	exportService      *services.ExportService
	backupService      *services.BackupService
	progressTracker    *services.ProgressTracker

	recoveryLimiter *attemptLimiter
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:              database,
		secretKey:       []byte(secret),
		location:        location,
		cookieSecure:    cookieSecure,
		recoveryLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database)
}
