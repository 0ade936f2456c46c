package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	clinics := api.Group("/clinics", handler.AuthRequired)
	clinics.Get("", handler.GetClinics)
	clinics.Post("", handler.CreateClinic)
	clinics.Put("/:id", handler.UpdateClinic)
	clinics.Delete("/:id", handler.DeleteClinic)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.GetLogs)
	logs.Post("", handler.CreateLog)
	logs.Put("/:id", handler.UpdateLog)
	logs.Delete("/:id", handler.DeleteLog)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/weekly", handler.GetWeeklyHours)
	stats.Get("/monthly", handler.GetMonthlyHours)
	stats.Get("/full", handler.GetFullProgressHours)

	export := api.Group("/export", handler.AuthRequired, handler.SubscriberRequired)
	export.Get("/csv", handler.ExportCSV)

	backup := api.Group("/backup", handler.AuthRequired, handler.SubscriberRequired)
	backup.Get("/export", handler.ExportBackup)
	backup.Post("/restore", handler.RestoreBackup)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/profile", handler.UpdateDisplayName)
	settings.Post("/targets", handler.UpdateTargets)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/regenerate-recovery-code", handler.RegenerateRecoveryCode)
	settings.Post("/factory-reset", handler.FactoryReset)
	settings.Delete("/delete-account", handler.DeleteAccount)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminRequired)
	admin.Get("/users", handler.AdminListUsers)
	admin.Post("/users/:id/role", handler.AdminChangeRole)
	admin.Post("/users/:id/subscription", handler.AdminChangeSubscription)
	admin.Delete("/users/:id", handler.AdminDeleteUser)
}
