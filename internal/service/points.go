package service

import (
	"trueinvest_backend/internal/model"
	"trueinvest_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// The ledger is the denormalized total_points column on users. Both
// mutations run as single atomic UPDATE expressions so concurrent
// completions from different sessions cannot lose updates, and they are
// only ever called inside the same transaction as the event write they
// belong to.

func awardPoints(tx *gorm.DB, userID uint, amount int) error {
	err := tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_points", gorm.Expr("total_points + ?", amount)).
		Error
	if err == nil {
		monitoring.PointsAwarded.WithLabelValues("award").Add(float64(amount))
	}
	return err
}

// revokePoints floors the ledger at zero; a revoke larger than the
// current total leaves the user at 0, never negative.
func revokePoints(tx *gorm.DB, userID uint, amount int) error {
	err := tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_points", gorm.Expr("GREATEST(total_points - ?, 0)", amount)).
		Error
	if err == nil {
		monitoring.PointsAwarded.WithLabelValues("revoke").Add(float64(amount))
	}
	return err
}
