package repository

import (
	"context"
	"errors"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type InteractionRepository interface {
	// Create fails with a duplicate-key error (see IsDuplicateKey) when the
	// (user, post, action kind) row already exists.
	Create(ctx context.Context, data *entity.Interaction) error
	Has(ctx context.Context, userID, postID string, kind entity.ActionKind) (bool, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type interactionRepository struct{}

func NewInteractionRepository() *interactionRepository {
	return &interactionRepository{}
}

func (r *interactionRepository) Create(ctx context.Context, data *entity.Interaction) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *interactionRepository) Has(
	ctx context.Context, userID, postID string, kind entity.ActionKind,
) (bool, error) {
	var record entity.Interaction
	err := xcontext.DB(ctx).
		Take(&record, "user_id=? AND post_id=? AND action_kind=?", userID, postID, kind).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *interactionRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Interaction{}).
		Where("user_id=?", userID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *interactionRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.Interaction{}).
		Where("post_id=?", postID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
