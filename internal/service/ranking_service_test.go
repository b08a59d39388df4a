package service

import (
	"context"
	"testing"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"
)

func TestLeaderboardOrderAndTies(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	ranking := NewRankingService(userRepo, testRedis(), 50, 0)
	ctx := context.Background()

	a := createTestUser(t, db, "alpha")
	b := createTestUser(t, db, "beta")
	c := createTestUser(t, db, "gamma")

	db.Model(&model.User{}).Where("id = ?", a.ID).Update("total_points", 100)
	db.Model(&model.User{}).Where("id = ?", b.ID).Update("total_points", 200)
	// c stays at 100: ties break by account age, so a comes before c.
	db.Model(&model.User{}).Where("id = ?", c.ID).Update("total_points", 100)

	ranking.Invalidate(ctx)
	entries, err := ranking.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	wantOrder := []uint{b.ID, a.ID, c.ID}
	for i, want := range wantOrder {
		if entries[i].Profile.ID != want {
			t.Errorf("position %d = user %d, want %d", i+1, entries[i].Profile.ID, want)
		}
		if entries[i].Position != i+1 {
			t.Errorf("position field = %d, want %d", entries[i].Position, i+1)
		}
	}

	// Leaderboard entries must never leak contact details.
	for _, e := range entries {
		if e.Profile.Name == "" {
			t.Error("profile name missing")
		}
	}
}

func TestRankForUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	ranking := NewRankingService(userRepo, testRedis(), 50, 0)

	rank, err := ranking.Rank(context.Background(), 99999)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if rank != 0 {
		t.Errorf("rank = %d, want 0 for unknown user", rank)
	}
}
