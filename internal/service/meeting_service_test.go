package service

import (
	"errors"
	"testing"
	"time"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

func newTestMeetingService(db *gorm.DB) *MeetingService {
	return NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewUserRepository(db),
		db,
	)
}

func TestCreateMeetingNotifiesEveryUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMeetingService(db)

	admin := createTestUser(t, db, "paula")
	createTestUser(t, db, "rui")
	createTestUser(t, db, "sofia")

	meeting, err := svc.CreateMeeting(&MeetingRequest{
		Title:       "Reunião semanal",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	}, admin.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var n int64
	db.Model(&model.Notification{}).
		Where("type = ? AND reference_id = ?", model.NotificationMeeting, meeting.ID).
		Count(&n)
	if n != 3 {
		t.Errorf("notifications = %d, want 3", n)
	}
}

func TestCancelMeetingNotifiesAndRejectsRepeat(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMeetingService(db)

	admin := createTestUser(t, db, "tiago")
	meeting, err := svc.CreateMeeting(&MeetingRequest{
		Title:       "Treinamento",
		ScheduledAt: time.Now().Add(time.Hour),
	}, admin.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := svc.CancelMeeting(meeting.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != model.MeetingCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}

	var n int64
	db.Model(&model.Notification{}).
		Where("type = ? AND reference_id = ?", model.NotificationMeetingCancelled, meeting.ID).
		Count(&n)
	if n != 1 {
		t.Errorf("cancel notifications = %d, want 1", n)
	}

	if _, err := svc.CancelMeeting(meeting.ID); !errors.Is(err, util.ErrMeetingNotFound) {
		t.Fatalf("repeat cancel err = %v, want ErrMeetingNotFound", err)
	}
}

func TestScheduledAtMustBeFuture(t *testing.T) {
	svc := &MeetingService{}
	err := svc.ValidateMeetingRequest(&MeetingRequest{
		Title:       "Retro",
		ScheduledAt: time.Now().Add(-time.Hour),
	})
	if err == nil {
		t.Fatal("expected validation error for past time")
	}
}
