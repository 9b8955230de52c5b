package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/boostbuddies/backend/internal/domain/statistic"
	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/dateutil"
	"github.com/boostbuddies/backend/pkg/enum"
	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type EngagementDomain interface {
	ProcessEngagement(context.Context, *model.ProcessEngagementRequest) (*model.ProcessEngagementResponse, error)
	ClaimDailyBonus(context.Context, *model.ClaimDailyBonusRequest) (*model.ClaimDailyBonusResponse, error)
}

type engagementDomain struct {
	postRepo          repository.PostRepository
	userRepo          repository.UserRepository
	interactionRepo   repository.InteractionRepository
	pointsHistoryRepo repository.PointsHistoryRepository
	leaderboard       statistic.Leaderboard
}

func NewEngagementDomain(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	interactionRepo repository.InteractionRepository,
	pointsHistoryRepo repository.PointsHistoryRepository,
	leaderboard statistic.Leaderboard,
) *engagementDomain {
	return &engagementDomain{
		postRepo:          postRepo,
		userRepo:          userRepo,
		interactionRepo:   interactionRepo,
		pointsHistoryRepo: pointsHistoryRepo,
		leaderboard:       leaderboard,
	}
}

// ProcessEngagement is the only write path touching the interaction ledger,
// the points history, the user balance, and the post progress together. All
// four move in one transaction, with the ledger insert as its first
// statement so a duplicate aborts before any other effect.
func (d *engagementDomain) ProcessEngagement(
	ctx context.Context, req *model.ProcessEngagementRequest,
) (*model.ProcessEngagementResponse, error) {
	kind, err := enum.ToEnum[entity.ActionKind](req.Action)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid action: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Unsupported action %s", req.Action)
	}

	if !slices.Contains(entity.EngagementKinds, kind) {
		return nil, errorx.New(errorx.BadRequest, "Action %s cannot be submitted as an engagement", kind)
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if post.UserID == userID {
		return nil, errorx.New(errorx.PermissionDenied, "You cannot boost your own post")
	}

	if post.Status != entity.PostPending {
		return nil, errorx.New(errorx.Unavailable, "This post is no longer accepting engagement")
	}

	value, err := entity.ValueOf(kind)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve action value: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.interactionRepo.Create(ctx, &entity.Interaction{
		UserID:     userID,
		PostID:     post.ID,
		ActionKind: kind,
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return &model.ProcessEngagementResponse{
				Success: false,
				Message: "You have already performed this action on this post",
			}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot record interaction: %v", err)
		return nil, errorx.Unknown
	}

	if err := grantPoints(ctx, d.pointsHistoryRepo, d.userRepo, userID, kind, value, post.ID); err != nil {
		return nil, err
	}

	if err := d.postRepo.IncreaseEngagement(ctx, post.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The post turned terminal between our status check and here.
			return nil, errorx.New(errorx.Unavailable, "This post is no longer accepting engagement")
		}

		xcontext.Logger(ctx).Errorf("Cannot increase post engagement: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reload post: %v", err)
		return nil, errorx.Unknown
	}

	var approvedValue entity.ActionValue
	approved := false
	if updated.LikesReceived >= updated.LikesNeeded {
		approvedValue, err = entity.ValueOf(entity.ActionPostApproved)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot resolve approval value: %v", err)
			return nil, errorx.Unknown
		}

		err = d.postRepo.Approve(ctx, post.ID, approvedValue.Points)
		switch {
		case err == nil:
			if err := grantPoints(ctx, d.pointsHistoryRepo, d.userRepo, post.UserID, entity.ActionPostApproved, approvedValue, post.ID); err != nil {
				return nil, err
			}
			approved = true

		case errors.Is(err, gorm.ErrRecordNotFound):
			// Already approved by a concurrent engagement; the owner was
			// paid by whoever won the transition.

		default:
			xcontext.Logger(ctx).Errorf("Cannot approve post: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.IncreasePoint(ctx, userID, value.Points); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update cached leaderboard: %v", err)
	}

	if approved {
		if err := d.leaderboard.IncreasePoint(ctx, post.UserID, approvedValue.Points); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot update cached leaderboard: %v", err)
		}
	}

	return &model.ProcessEngagementResponse{
		Success:       true,
		PointsAwarded: value.Points,
		Message:       fmt.Sprintf("You earned %d points: %s", value.Points, value.Description),
	}, nil
}

// ClaimDailyBonus grants at most one daily_bonus per user per server-local
// calendar day. The repeated claim is an idempotent no-op, not an error.
func (d *engagementDomain) ClaimDailyBonus(
	ctx context.Context, req *model.ClaimDailyBonusRequest,
) (*model.ClaimDailyBonusResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if _, err := d.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	value, err := entity.ValueOf(entity.ActionDailyBonus)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve bonus value: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	claimed, err := d.pointsHistoryRepo.HasOfKindSince(
		ctx, userID, entity.ActionDailyBonus, dateutil.StartOfDay(time.Now()))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check the last bonus: %v", err)
		return nil, errorx.Unknown
	}

	if claimed {
		return &model.ClaimDailyBonusResponse{
			Awarded: false,
			Message: "You have already claimed today's bonus",
		}, nil
	}

	if err := grantPoints(ctx, d.pointsHistoryRepo, d.userRepo, userID, entity.ActionDailyBonus, value, ""); err != nil {
		// A concurrent claim can slip past the history check; the unique
		// index on (user_id, bonus_day) settles it.
		if repository.IsDuplicateKey(err) {
			return &model.ClaimDailyBonusResponse{
				Awarded: false,
				Message: "You have already claimed today's bonus",
			}, nil
		}

		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.IncreasePoint(ctx, userID, value.Points); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update cached leaderboard: %v", err)
	}

	return &model.ClaimDailyBonusResponse{
		Awarded:       true,
		PointsAwarded: value.Points,
		Message:       fmt.Sprintf("You earned %d points: %s", value.Points, value.Description),
	}, nil
}

// grantPoints appends the history row and moves the balance as one unit. It
// must be called inside an open transaction.
func grantPoints(
	ctx context.Context,
	pointsHistoryRepo repository.PointsHistoryRepository,
	userRepo repository.UserRepository,
	userID string,
	kind entity.ActionKind,
	value entity.ActionValue,
	postID string,
) error {
	history := &entity.PointsHistory{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Points:      value.Points,
		ActionKind:  kind,
		Description: value.Description,
	}

	if postID != "" {
		history.PostID = sql.NullString{String: postID, Valid: true}
	}

	if kind == entity.ActionDailyBonus {
		history.BonusDay = sql.NullString{
			String: dateutil.StartOfDay(time.Now()).Format("2006-01-02"),
			Valid:  true,
		}
	}

	if err := pointsHistoryRepo.Create(ctx, history); err != nil {
		if repository.IsDuplicateKey(err) {
			return err
		}

		xcontext.Logger(ctx).Errorf("Cannot append points history: %v", err)
		return errorx.Unknown
	}

	if err := userRepo.IncreasePoints(ctx, userID, value.Points); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot increase user points: %v", err)
		return errorx.Unknown
	}

	return nil
}
