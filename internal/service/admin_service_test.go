package service

import (
	"context"
	"errors"
	"testing"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"

	"gorm.io/gorm"
)

func newTestAdminService(db *gorm.DB) *AdminService {
	userRepo := repository.NewUserRepository(db)
	ranking := NewRankingService(userRepo, testRedis(), 50, 1)
	return NewAdminService(userRepo, ranking, db)
}

func TestSelfDemotionRejected(t *testing.T) {
	svc := &AdminService{}
	if _, err := svc.UpdateUserRole(7, 7, model.Broker); !errors.Is(err, util.ErrSelfDemotion) {
		t.Fatalf("err = %v, want ErrSelfDemotion", err)
	}
}

func TestResetUserDataZeroesLedgerAndHistory(t *testing.T) {
	db := setupTestDB(t)
	goalSvc := newTestGoalService(db)
	adminSvc := newTestAdminService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "kata")
	other := createTestUser(t, db, "luan")
	goal := createTestGoal(t, db, model.GoalRecurring, 20)

	if _, err := goalSvc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := goalSvc.CompleteGoal(ctx, other.ID, goal.ID); err != nil {
		t.Fatalf("complete other: %v", err)
	}

	if err := adminSvc.ResetUserData(ctx, user.ID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if got := userPoints(t, db, user.ID); got != 0 {
		t.Errorf("reset user points = %d, want 0", got)
	}
	var n int64
	db.Model(&model.GoalEvent{}).Where("user_id = ?", user.ID).Count(&n)
	if n != 0 {
		t.Errorf("reset user events = %d, want 0", n)
	}

	// The other user's ledger and history must be untouched.
	if got := userPoints(t, db, other.ID); got != 20 {
		t.Errorf("other user points = %d, want 20", got)
	}
	db.Model(&model.GoalEvent{}).Where("user_id = ?", other.ID).Count(&n)
	if n != 1 {
		t.Errorf("other user events = %d, want 1", n)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	goalSvc := newTestGoalService(db)
	adminSvc := newTestAdminService(db)
	ctx := context.Background()

	admin := createTestUser(t, db, "marta")
	user := createTestUser(t, db, "nilo")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)

	if _, err := goalSvc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := adminSvc.DeleteUser(ctx, admin.ID, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var n int64
	db.Model(&model.User{}).Where("id = ?", user.ID).Count(&n)
	if n != 0 {
		t.Error("user still present after delete")
	}
	db.Model(&model.GoalEvent{}).Where("user_id = ?", user.ID).Count(&n)
	if n != 0 {
		t.Errorf("events after delete = %d, want 0", n)
	}
}

func TestDeleteOwnAccountRejected(t *testing.T) {
	db := setupTestDB(t)
	adminSvc := newTestAdminService(db)

	admin := createTestUser(t, db, "olga")
	if err := adminSvc.DeleteUser(context.Background(), admin.ID, admin.ID); !errors.Is(err, util.ErrSelfDeletion) {
		t.Fatalf("err = %v, want ErrSelfDeletion", err)
	}
}
