package service

import (
	"errors"
	"testing"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"
)

func TestClockInOnceADay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(repository.NewTimeEntryRepository(db))
	user := createTestUser(t, db, "hugo")

	entry, err := svc.ClockIn(user.ID, "office")
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if entry.ClockOut != nil {
		t.Error("fresh entry should have no clock-out")
	}

	if _, err := svc.ClockIn(user.ID, "office"); !errors.Is(err, util.ErrAlreadyClockedIn) {
		t.Fatalf("second clock in err = %v, want ErrAlreadyClockedIn", err)
	}
}

func TestClockOutClosesOpenEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(repository.NewTimeEntryRepository(db))
	user := createTestUser(t, db, "iris")

	if _, err := svc.ClockOut(user.ID, ""); !errors.Is(err, util.ErrNotClockedIn) {
		t.Fatalf("clock out without entry err = %v, want ErrNotClockedIn", err)
	}

	if _, err := svc.ClockIn(user.ID, ""); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	entry, err := svc.ClockOut(user.ID, "home")
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if entry.ClockOut == nil {
		t.Fatal("clock-out timestamp not set")
	}

	if _, err := svc.ClockOut(user.ID, ""); !errors.Is(err, util.ErrNotClockedIn) {
		t.Fatalf("repeat clock out err = %v, want ErrNotClockedIn", err)
	}
}

func TestTodayReportsCurrentEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(repository.NewTimeEntryRepository(db))
	user := createTestUser(t, db, "joana")

	entry, err := svc.Today(user.ID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if entry != nil {
		t.Fatal("expected nil entry before clock-in")
	}

	if _, err := svc.ClockIn(user.ID, ""); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	entry, err = svc.Today(user.ID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if entry == nil {
		t.Fatal("expected entry after clock-in")
	}
}
