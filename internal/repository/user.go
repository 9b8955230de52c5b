package repository

import (
	"context"
	"errors"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	IncreasePoints(ctx context.Context, id string, delta int64) error
	GetLeaderboard(ctx context.Context, offset, limit int) ([]entity.User, error)
	AllBalances(ctx context.Context) ([]entity.User, error)
	CountWithMorePoints(ctx context.Context, points int64) (int64, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "email=?", email).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []entity.User
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// IncreasePoints must run in the same transaction as the matching points
// history append.
func (r *userRepository) IncreasePoints(ctx context.Context, id string, delta int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("id=?", id).
		Update("points", gorm.Expr("points+?", delta))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetLeaderboard orders by points descending; ties are broken by id in
// descending lexical order so the result matches the redis reverse range.
func (r *userRepository) GetLeaderboard(ctx context.Context, offset, limit int) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Order("points DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AllBalances loads only the columns the leaderboard cache needs.
func (r *userRepository) AllBalances(ctx context.Context) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Select("id", "points").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) CountWithMorePoints(ctx context.Context, points int64) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.User{}).
		Where("points > ?", points).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
