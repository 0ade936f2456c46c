package api

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/molarhq/molarlog/internal/models"
)

var testRecoveryCodePattern = regexp.MustCompile(`^MOLAR-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func TestSetupStatusFlipsAfterFirstRegistration(t *testing.T) {
	app, _ := newTestApp(t)

	status := getJSON(t, app, "", "/api/auth/setup-status", http.StatusOK)
	if status["requires_setup"] != true {
		t.Fatalf("expected setup required on empty store, got %#v", status)
	}

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":            "first@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["role"] != models.RolePrimaryAdmin {
		t.Fatalf("expected first registrant to become primary admin, got %#v", body["role"])
	}
	recoveryCode, _ := body["recovery_code"].(string)
	if !testRecoveryCodePattern.MatchString(recoveryCode) {
		t.Fatalf("expected recovery code in response, got %q", recoveryCode)
	}

	status = getJSON(t, app, "", "/api/auth/setup-status", http.StatusOK)
	if status["requires_setup"] != false {
		t.Fatalf("expected setup no longer required, got %#v", status)
	}
}

func TestSecondRegistrantGetsUserRole(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "first@example.com", "StrongPass1", models.RolePrimaryAdmin)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":            "second@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}
	if body := decodeJSONBody(t, response); body["role"] != models.RoleUser {
		t.Fatalf("expected plain user role, got %#v", body["role"])
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "taken@example.com", "StrongPass1", models.RolePrimaryAdmin)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":            "TAKEN@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected register status 409, got %d", response.StatusCode)
	}
}

func TestLoginRejectsInvalidCredentials(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "StrongPass1", models.RoleUser)

	response := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"email":    "user@example.com",
		"password": "WrongPass1",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected login status 401, got %d", response.StatusCode)
	}
}

func TestMeRequiresAuthentication(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "user@example.com", "StrongPass1", models.RoleUser)

	getJSON(t, app, "", "/api/auth/me", http.StatusUnauthorized)

	cookie := loginAndExtractAuthCookie(t, app, "user@example.com", "StrongPass1")
	me := getJSON(t, app, cookie, "/api/auth/me", http.StatusOK)
	if me["email"] != "user@example.com" {
		t.Fatalf("expected own profile, got %#v", me)
	}
	if me["target_combined"] != float64(models.DefaultTargetShadowing+models.DefaultTargetDental+models.DefaultTargetNonDental) {
		t.Fatalf("expected combined target derived from category targets, got %#v", me["target_combined"])
	}
}

func TestForgotPasswordWithRecoveryCodeIssuesResetToken(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":            "user@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	body := decodeJSONBody(t, response)
	response.Body.Close()
	recoveryCode, _ := body["recovery_code"].(string)

	forgot := postJSON(t, app, "", "/api/auth/forgot-password", map[string]any{
		"recovery_code": recoveryCode,
	})
	defer forgot.Body.Close()
	if forgot.StatusCode != http.StatusOK {
		t.Fatalf("expected forgot-password status 200, got %d", forgot.StatusCode)
	}
	forgotBody := decodeJSONBody(t, forgot)
	resetToken, _ := forgotBody["reset_token"].(string)
	if resetToken == "" {
		t.Fatalf("expected reset token, got %#v", forgotBody)
	}

	reset := postJSON(t, app, "", "/api/auth/reset-password", map[string]any{
		"token":            resetToken,
		"password":         "NewStrongPass2",
		"confirm_password": "NewStrongPass2",
	})
	defer reset.Body.Close()
	if reset.StatusCode != http.StatusOK {
		t.Fatalf("expected reset-password status 200, got %d", reset.StatusCode)
	}

	loginAndExtractAuthCookie(t, app, "user@example.com", "NewStrongPass2")
}

func TestResetTokenInvalidAfterPasswordChange(t *testing.T) {
	app, _ := newTestApp(t)

	response := postJSON(t, app, "", "/api/auth/register", map[string]any{
		"email":            "user@example.com",
		"password":         "StrongPass1",
		"confirm_password": "StrongPass1",
	})
	body := decodeJSONBody(t, response)
	response.Body.Close()
	recoveryCode, _ := body["recovery_code"].(string)

	forgot := postJSON(t, app, "", "/api/auth/forgot-password", map[string]any{
		"recovery_code": recoveryCode,
	})
	forgotBody := decodeJSONBody(t, forgot)
	forgot.Body.Close()
	resetToken, _ := forgotBody["reset_token"].(string)

	first := postJSON(t, app, "", "/api/auth/reset-password", map[string]any{
		"token":            resetToken,
		"password":         "NewStrongPass2",
		"confirm_password": "NewStrongPass2",
	})
	first.Body.Close()
	if first.StatusCode != http.StatusOK {
		t.Fatalf("expected first reset to succeed, got %d", first.StatusCode)
	}

	second := postJSON(t, app, "", "/api/auth/reset-password", map[string]any{
		"token":            resetToken,
		"password":         "AnotherPass3",
		"confirm_password": "AnotherPass3",
	})
	defer second.Body.Close()
	if second.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected stale token rejected with 400, got %d", second.StatusCode)
	}
}
