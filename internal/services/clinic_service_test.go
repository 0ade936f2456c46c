package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/molarhq/molarlog/internal/models"
)

type clinicStoreStub struct {
	clinics   map[uint]models.Clinic
	nextID    uint
	createErr error
	saveErr   error
	deleteErr error
}

func newClinicStoreStub() *clinicStoreStub {
	return &clinicStoreStub{clinics: make(map[uint]models.Clinic), nextID: 1}
}

func (stub *clinicStoreStub) ListByUser(userID uint) ([]models.Clinic, error) {
	clinics := make([]models.Clinic, 0)
	for _, clinic := range stub.clinics {
		if clinic.UserID == userID {
			clinics = append(clinics, clinic)
		}
	}
	sort.Slice(clinics, func(i, j int) bool { return clinics[i].ID < clinics[j].ID })
	return clinics, nil
}

func (stub *clinicStoreStub) FindByIDForUser(clinicID uint, userID uint) (models.Clinic, error) {
	clinic, ok := stub.clinics[clinicID]
	if !ok || clinic.UserID != userID {
		return models.Clinic{}, errors.New("record not found")
	}
	return clinic, nil
}

func (stub *clinicStoreStub) Create(clinic *models.Clinic) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if clinic.ID == 0 {
		clinic.ID = stub.nextID
		stub.nextID++
	}
	stub.clinics[clinic.ID] = *clinic
	return nil
}

func (stub *clinicStoreStub) Save(clinic *models.Clinic) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.clinics[clinic.ID] = *clinic
	return nil
}

func (stub *clinicStoreStub) Delete(clinic *models.Clinic) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	delete(stub.clinics, clinic.ID)
	return nil
}

func TestCreateClinicDefaultsStatusToContact(t *testing.T) {
	store := newClinicStoreStub()
	service := NewClinicService(store, nil)

	clinic, err := service.CreateClinic(10, ClinicInput{Name: "  Lakeside Dental  "})
	if err != nil {
		t.Fatalf("CreateClinic() unexpected error: %v", err)
	}
	if clinic.Name != "Lakeside Dental" {
		t.Fatalf("expected trimmed name, got %q", clinic.Name)
	}
	if clinic.Status != models.ClinicStatusToContact {
		t.Fatalf("expected default status %q, got %q", models.ClinicStatusToContact, clinic.Status)
	}
}

func TestCreateClinicRejectsInvalidInput(t *testing.T) {
	service := NewClinicService(newClinicStoreStub(), nil)

	if _, err := service.CreateClinic(10, ClinicInput{Name: "   "}); !errors.Is(err, ErrInvalidClinicName) {
		t.Fatalf("expected ErrInvalidClinicName, got %v", err)
	}
	if _, err := service.CreateClinic(10, ClinicInput{Name: "Lakeside", Status: "Paused"}); !errors.Is(err, ErrInvalidClinicStatus) {
		t.Fatalf("expected ErrInvalidClinicStatus, got %v", err)
	}
}

func TestUpdateClinicScopedToOwner(t *testing.T) {
	store := newClinicStoreStub()
	store.clinics[1] = models.Clinic{ID: 1, UserID: 10, Name: "Lakeside", Status: models.ClinicStatusToContact}
	service := NewClinicService(store, nil)

	if _, err := service.UpdateClinic(11, 1, ClinicInput{Name: "Lakeside", Status: models.ClinicStatusContacted}); !errors.Is(err, ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound for other user's clinic, got %v", err)
	}

	clinic, err := service.UpdateClinic(10, 1, ClinicInput{Name: "Lakeside", Status: models.ClinicStatusShadowing})
	if err != nil {
		t.Fatalf("UpdateClinic() unexpected error: %v", err)
	}
	if clinic.Status != models.ClinicStatusShadowing {
		t.Fatalf("expected updated status, got %q", clinic.Status)
	}
}

func TestDeleteClinicNotifiesFeed(t *testing.T) {
	store := newClinicStoreStub()
	store.clinics[1] = models.Clinic{ID: 1, UserID: 10, Name: "Lakeside", Status: models.ClinicStatusToContact}
	feed := NewChangeFeed()
	notified := 0
	feed.Subscribe(func() { notified++ })
	service := NewClinicService(store, feed)

	if err := service.DeleteClinic(10, 1); err != nil {
		t.Fatalf("DeleteClinic() unexpected error: %v", err)
	}
	if len(store.clinics) != 0 {
		t.Fatalf("expected clinic removed")
	}
	if notified != 1 {
		t.Fatalf("expected one notification, got %d", notified)
	}
}

func TestCountsForUserCountsEngagedStatuses(t *testing.T) {
	store := newClinicStoreStub()
	store.clinics[1] = models.Clinic{ID: 1, UserID: 10, Name: "A", Status: models.ClinicStatusToContact}
	store.clinics[2] = models.Clinic{ID: 2, UserID: 10, Name: "B", Status: models.ClinicStatusContacted}
	store.clinics[3] = models.Clinic{ID: 3, UserID: 10, Name: "C", Status: models.ClinicStatusShadowing}
	store.clinics[4] = models.Clinic{ID: 4, UserID: 10, Name: "D", Status: models.ClinicStatusRejected}
	store.clinics[5] = models.Clinic{ID: 5, UserID: 11, Name: "E", Status: models.ClinicStatusShadowing}
	service := NewClinicService(store, nil)

	counts, err := service.CountsForUser(10)
	if err != nil {
		t.Fatalf("CountsForUser() unexpected error: %v", err)
	}
	if counts.Total != 4 {
		t.Fatalf("expected 4 clinics for user, got %d", counts.Total)
	}
	if counts.Engaged != 2 {
		t.Fatalf("expected 2 engaged clinics, got %d", counts.Engaged)
	}
}
