package repository

import (
	"context"
	"errors"
	"time"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PostFilter struct {
	UserID string
	Status entity.PostStatus
}

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetList(ctx context.Context, filter PostFilter, offset, limit int) ([]entity.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	IncreaseEngagement(ctx context.Context, id string) error
	Approve(ctx context.Context, id string, pointsEarned int64) error
	Reject(ctx context.Context, id string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var record entity.Post
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *postRepository) GetList(
	ctx context.Context, filter PostFilter, offset, limit int,
) ([]entity.Post, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Order("created_at DESC").
		Offset(offset).Limit(limit)

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var result []entity.Post
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	tx := xcontext.DB(ctx).Model(&entity.Post{})

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	var result int64
	if err := tx.Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}

// IncreaseEngagement increments likes_received by one, but only while the
// post is still pending. The status predicate on the UPDATE is what prevents
// both lost updates and counting against a terminal post under concurrency.
// Returns gorm.ErrRecordNotFound when the post is missing or terminal.
func (r *postRepository) IncreaseEngagement(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=? AND status=?", id, entity.PostPending).
		Update("likes_received", gorm.Expr("likes_received+1"))

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

// Approve transitions pending -> approved and freezes the points earned by
// the post. The status predicate makes the transition fire at most once.
func (r *postRepository) Approve(ctx context.Context, id string, pointsEarned int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=? AND status=?", id, entity.PostPending).
		Updates(map[string]any{
			"status":        entity.PostApproved,
			"points_earned": pointsEarned,
			"approved_at":   time.Now(),
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *postRepository) Reject(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Post{}).
		Where("id=? AND status=?", id, entity.PostPending).
		Update("status", entity.PostRejected)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
