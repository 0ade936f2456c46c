package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/models"
)

func TestBackupRoutesRequireSubscription(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "free@example.com", "StrongPass1", models.RoleUser)
	cookie := loginAndExtractAuthCookie(t, app, "free@example.com", "StrongPass1")

	getJSON(t, app, cookie, "/api/backup/export", http.StatusForbidden)
	getJSON(t, app, cookie, "/api/export/csv", http.StatusForbidden)
}

func TestAdminBypassesSubscriptionGate(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "admin@example.com", "StrongPass1", models.RolePrimaryAdmin)
	cookie := loginAndExtractAuthCookie(t, app, "admin@example.com", "StrongPass1")

	request := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected export allowed for admin, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); !strings.Contains(contentType, "text/csv") {
		t.Fatalf("expected CSV content type, got %q", contentType)
	}
}

func TestRestoreReplacesSubscriberData(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "sub@example.com", "StrongPass1", models.RoleUser)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).
		Update("subscription_status", models.SubscriptionActive).Error; err != nil {
		t.Fatalf("activate subscription: %v", err)
	}
	cookie := loginAndExtractAuthCookie(t, app, "sub@example.com", "StrongPass1")

	created := postJSON(t, app, cookie, "/api/logs", map[string]any{
		"date":     "2024-03-10",
		"duration": 5,
		"type":     models.TypeShadowing,
	})
	created.Body.Close()
	if created.StatusCode != http.StatusCreated {
		t.Fatalf("expected seed log accepted, got %d", created.StatusCode)
	}

	document := `{
		"version": 1,
		"timestamp": "2024-03-15T00:00:00Z",
		"clinics": [{"name": "Bright Smiles", "status": "Contacted"}],
		"logs": [
			{"date": "2024-02-01T00:00:00Z", "duration": 2, "type": "Shadowing"},
			{"date": "2024-02-02T00:00:00Z", "duration": 4, "type": "Dental Volunteering"}
		]
	}`
	restore := sendRawJSON(t, app, cookie, "/api/backup/restore", document)
	defer restore.Body.Close()
	if restore.StatusCode != http.StatusOK {
		t.Fatalf("expected restore status 200, got %d", restore.StatusCode)
	}

	logs := getJSON(t, app, cookie, "/api/logs", http.StatusOK)
	entries, ok := logs["logs"].([]any)
	if !ok || len(entries) != 2 {
		t.Fatalf("expected restore to replace existing logs, got %#v", logs["logs"])
	}

	clinics := getJSON(t, app, cookie, "/api/clinics", http.StatusOK)
	restored, ok := clinics["clinics"].([]any)
	if !ok || len(restored) != 1 {
		t.Fatalf("expected one restored clinic, got %#v", clinics["clinics"])
	}
}

func TestRestoreRemapsClinicIdentifiersAcrossUsers(t *testing.T) {
	app, database := newTestApp(t)
	first := createTestUser(t, database, "first@example.com", "StrongPass1", models.RoleUser)
	second := createTestUser(t, database, "second@example.com", "StrongPass1", models.RoleUser)
	for _, userID := range []uint{first.ID, second.ID} {
		if err := database.Model(&models.User{}).Where("id = ?", userID).
			Update("subscription_status", models.SubscriptionActive).Error; err != nil {
			t.Fatalf("activate subscription: %v", err)
		}
	}

	firstCookie := loginAndExtractAuthCookie(t, app, "first@example.com", "StrongPass1")
	seeded := postJSON(t, app, firstCookie, "/api/clinics", map[string]any{
		"name":   "First Smiles",
		"status": models.ClinicStatusContacted,
	})
	seeded.Body.Close()
	if seeded.StatusCode != http.StatusCreated {
		t.Fatalf("expected seed clinic accepted, got %d", seeded.StatusCode)
	}

	// The document reuses the first user's clinic id; restoring it for the
	// second user must assign fresh ids and rewrite the log's reference.
	secondCookie := loginAndExtractAuthCookie(t, app, "second@example.com", "StrongPass1")
	document := `{
		"version": 1,
		"timestamp": "2024-03-15T00:00:00Z",
		"clinics": [{"id": 1, "name": "Carried Over Clinic", "status": "Shadowing"}],
		"logs": [{"clinic_id": 1, "date": "2024-02-01T00:00:00Z", "duration": 3, "type": "Shadowing"}]
	}`
	restore := sendRawJSON(t, app, secondCookie, "/api/backup/restore", document)
	restore.Body.Close()
	if restore.StatusCode != http.StatusOK {
		t.Fatalf("expected restore status 200, got %d", restore.StatusCode)
	}

	logs := getJSON(t, app, secondCookie, "/api/logs", http.StatusOK)
	entries, ok := logs["logs"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected one restored log, got %#v", logs["logs"])
	}
	entry, ok := entries[0].(map[string]any)
	if !ok || entry["clinic_name"] != "Carried Over Clinic" {
		t.Fatalf("expected restored log bound to the restored clinic, got %#v", entries[0])
	}

	clinics := getJSON(t, app, firstCookie, "/api/clinics", http.StatusOK)
	kept, ok := clinics["clinics"].([]any)
	if !ok || len(kept) != 1 {
		t.Fatalf("expected first user's clinic untouched, got %#v", clinics["clinics"])
	}
	keptClinic, ok := kept[0].(map[string]any)
	if !ok || keptClinic["name"] != "First Smiles" {
		t.Fatalf("expected first user's clinic to survive the other restore, got %#v", kept[0])
	}
}

func TestRestoreMalformedDocumentKeepsExistingData(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "sub@example.com", "StrongPass1", models.RoleUser)
	if err := database.Model(&models.User{}).Where("id = ?", user.ID).
		Update("subscription_status", models.SubscriptionActive).Error; err != nil {
		t.Fatalf("activate subscription: %v", err)
	}
	cookie := loginAndExtractAuthCookie(t, app, "sub@example.com", "StrongPass1")

	created := postJSON(t, app, cookie, "/api/logs", map[string]any{
		"date":     "2024-03-10",
		"duration": 5,
		"type":     models.TypeShadowing,
	})
	created.Body.Close()

	// Valid JSON but missing the logs collection entirely.
	restore := sendRawJSON(t, app, cookie, "/api/backup/restore", `{"version":1,"timestamp":"2024-03-15T00:00:00Z","clinics":[]}`)
	defer restore.Body.Close()
	if restore.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected malformed restore rejected with 400, got %d", restore.StatusCode)
	}

	logs := getJSON(t, app, cookie, "/api/logs", http.StatusOK)
	entries, ok := logs["logs"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("expected existing log untouched after failed restore, got %#v", logs["logs"])
	}
}

func sendRawJSON(t *testing.T, app *fiber.App, authCookie string, path string, body string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}
