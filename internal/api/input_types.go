package api

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	DisplayName     string `json:"display_name" form:"display_name"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code" form:"recovery_code"`
}

type resetPasswordInput struct {
	Token           string `json:"token" form:"token"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type displayNameInput struct {
	DisplayName string `json:"display_name" form:"display_name"`
}

type targetsInput struct {
	Shadowing int `json:"shadowing" form:"shadowing"`
	Dental    int `json:"dental" form:"dental"`
	NonDental int `json:"non_dental" form:"non_dental"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

type clinicPayload struct {
	Name      string  `json:"name" form:"name"`
	Address   string  `json:"address" form:"address"`
	Latitude  float64 `json:"latitude" form:"latitude"`
	Longitude float64 `json:"longitude" form:"longitude"`
	Phone     string  `json:"phone" form:"phone"`
	Email     string  `json:"email" form:"email"`
	Website   string  `json:"website" form:"website"`
	Status    string  `json:"status" form:"status"`
	Notes     string  `json:"notes" form:"notes"`
}

type logPayload struct {
	ClinicID   *uint   `json:"clinic_id" form:"clinic_id"`
	Date       string  `json:"date" form:"date"`
	Duration   float64 `json:"duration" form:"duration"`
	Type       string  `json:"type" form:"type"`
	Supervisor string  `json:"supervisor" form:"supervisor"`
	Procedures string  `json:"procedures" form:"procedures"`
	Notes      string  `json:"notes" form:"notes"`
}

type adminRoleInput struct {
	Role string `json:"role" form:"role"`
}

type adminSubscriptionInput struct {
	Status string `json:"status" form:"status"`
}
