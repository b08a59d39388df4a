package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
	"trueinvest_backend/internal/util"
	"trueinvest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupTestDB connects to the database named by TEST_DATABASE_DSN and
// starts every test from empty tables. Tests are skipped when the env
// var is not set.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	logger.Log = zap.NewNop()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalEvent{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.TimeEntry{},
		&model.Sale{},
		&model.Activity{},
		&model.Meeting{},
		&model.Notification{},
		&model.AppSetting{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tables := []string{
		"goal_events", "user_achievements", "time_entries", "sales",
		"activities", "notifications", "meetings", "achievements",
		"goals", "users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}

	return db
}

func testRedis() *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

func newTestGoalService(db *gorm.DB) *GoalService {
	userRepo := repository.NewUserRepository(db)
	ranking := NewRankingService(userRepo, testRedis(), 50, 1)
	achievements := NewAchievementService(repository.NewAchievementRepository(db), userRepo, ranking, db)
	return NewGoalService(
		repository.NewGoalRepository(db),
		repository.NewGoalEventRepository(db),
		userRepo,
		ranking,
		achievements,
		db,
	)
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    name + "@test.local",
		Password: "x",
		Role:     model.Broker,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestGoal(t *testing.T, db *gorm.DB, kind model.GoalKind, reward int) *model.Goal {
	t.Helper()
	goal := &model.Goal{
		Title:        "Test goal",
		Category:     "sales",
		TargetValue:  1,
		RewardPoints: reward,
		Period:       model.PeriodMonthly,
		Kind:         kind,
		Active:       true,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return goal
}

func userPoints(t *testing.T, db *gorm.DB, userID uint) int {
	t.Helper()
	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return user.TotalPoints
}

func TestCompleteRecurringGoalAccumulates(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ana")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)

	for i := 0; i < 3; i++ {
		if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}

	if got := userPoints(t, db, user.ID); got != 30 {
		t.Errorf("total points = %d, want 30", got)
	}

	events, err := svc.ListEventsForUser(user.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("events = %d, want 3", len(events))
	}
}

func TestCompleteOneTimeGoalOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "bruno")
	goal := createTestGoal(t, db, model.GoalOneTime, 50)

	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); !errors.Is(err, util.ErrGoalAlreadyCompleted) {
		t.Fatalf("second complete err = %v, want ErrGoalAlreadyCompleted", err)
	}

	if got := userPoints(t, db, user.ID); got != 50 {
		t.Errorf("total points = %d, want 50", got)
	}
}

func TestCompleteInactiveGoalRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)

	user := createTestUser(t, db, "carla")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)
	if err := db.Model(goal).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.CompleteGoal(context.Background(), user.ID, goal.ID); !errors.Is(err, util.ErrGoalInactive) {
		t.Fatalf("err = %v, want ErrGoalInactive", err)
	}
}

func TestUndoRevertsLatestCompletion(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "diego")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)

	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	// Raise the reward between completions; the undo must debit the
	// amount snapshotted on the event, not the current reward.
	if err := db.Model(goal).Update("reward_points", 25).Error; err != nil {
		t.Fatalf("update reward: %v", err)
	}
	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if got := userPoints(t, db, user.ID); got != 35 {
		t.Fatalf("total points = %d, want 35", got)
	}

	if err := svc.UndoGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := userPoints(t, db, user.ID); got != 10 {
		t.Errorf("total points after undo = %d, want 10", got)
	}

	events, _ := svc.ListEventsForUser(user.ID)
	if len(events) != 1 {
		t.Errorf("events after undo = %d, want 1", len(events))
	}
}

func TestUndoWithoutCompletion(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)

	user := createTestUser(t, db, "elisa")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)

	if err := svc.UndoGoal(context.Background(), user.ID, goal.ID); !errors.Is(err, util.ErrNothingToUndo) {
		t.Fatalf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoFloorsLedgerAtZero(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "fabio")
	goal := createTestGoal(t, db, model.GoalRecurring, 10)

	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := db.Model(&model.User{}).Where("id = ?", user.ID).Update("total_points", 4).Error; err != nil {
		t.Fatalf("set points: %v", err)
	}

	if err := svc.UndoGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := userPoints(t, db, user.ID); got != 0 {
		t.Errorf("total points = %d, want 0", got)
	}
}

func TestDeleteGoalKeepsAwardedPoints(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestGoalService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "gina")
	goal := createTestGoal(t, db, model.GoalRecurring, 15)

	if _, err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := svc.DeleteGoal(ctx, goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var n int64
	db.Model(&model.GoalEvent{}).Where("goal_id = ?", goal.ID).Count(&n)
	if n != 0 {
		t.Errorf("events after delete = %d, want 0", n)
	}
	if got := userPoints(t, db, user.ID); got != 15 {
		t.Errorf("total points = %d, want 15", got)
	}
}

func TestValidateGoalRequest(t *testing.T) {
	valid := func() *GoalRequest {
		return &GoalRequest{
			Title:        "Monthly sales",
			Category:     "sales",
			TargetValue:  5,
			RewardPoints: 100,
			Period:       model.PeriodMonthly,
			Kind:         model.GoalRecurring,
		}
	}

	if err := ValidateGoalRequest(valid()); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*GoalRequest)
	}{
		{"blank title", func(r *GoalRequest) { r.Title = "   " }},
		{"zero reward", func(r *GoalRequest) { r.RewardPoints = 0 }},
		{"negative reward", func(r *GoalRequest) { r.RewardPoints = -5 }},
		{"zero target", func(r *GoalRequest) { r.TargetValue = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			if err := ValidateGoalRequest(req); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
