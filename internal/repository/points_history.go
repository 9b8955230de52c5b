package repository

import (
	"context"
	"time"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/pkg/xcontext"
)

type PointsHistoryRepository interface {
	Create(ctx context.Context, data *entity.PointsHistory) error
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.PointsHistory, error)
	SumByUserID(ctx context.Context, userID string) (int64, error)
	HasOfKindSince(ctx context.Context, userID string, kind entity.ActionKind, since time.Time) (bool, error)
}

type pointsHistoryRepository struct{}

func NewPointsHistoryRepository() *pointsHistoryRepository {
	return &pointsHistoryRepository{}
}

func (r *pointsHistoryRepository) Create(ctx context.Context, data *entity.PointsHistory) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *pointsHistoryRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.PointsHistory, error) {
	var result []entity.PointsHistory
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pointsHistoryRepository) SumByUserID(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.PointsHistory{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id=?", userID).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *pointsHistoryRepository) HasOfKindSince(
	ctx context.Context, userID string, kind entity.ActionKind, since time.Time,
) (bool, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.PointsHistory{}).
		Where("user_id=? AND action_kind=? AND created_at >= ?", userID, kind, since).
		Count(&result).Error
	if err != nil {
		return false, err
	}

	return result > 0, nil
}
