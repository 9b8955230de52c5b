package domain

import (
	"context"
	"errors"
	"time"

	"github.com/boostbuddies/backend/internal/common"
	"github.com/boostbuddies/backend/internal/domain/statistic"
	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/enum"
	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	GetList(context.Context, *model.GetListPostsRequest) (*model.GetListPostsResponse, error)
	Review(context.Context, *model.ReviewPostRequest) (*model.ReviewPostResponse, error)
}

type postDomain struct {
	postRepo          repository.PostRepository
	userRepo          repository.UserRepository
	pointsHistoryRepo repository.PointsHistoryRepository
	leaderboard       statistic.Leaderboard
	roleVerifier      *common.GlobalRoleVerifier
}

func NewPostDomain(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	pointsHistoryRepo repository.PointsHistoryRepository,
	leaderboard statistic.Leaderboard,
) *postDomain {
	return &postDomain{
		postRepo:          postRepo,
		userRepo:          userRepo,
		pointsHistoryRepo: pointsHistoryRepo,
		leaderboard:       leaderboard,
		roleVerifier:      common.NewGlobalRoleVerifier(userRepo),
	}
}

// Create registers a pending post for the requesting user. A premium owner's
// post is approved immediately with no required engagements; the auto
// approval grants no points, since points reward engagement, not ownership.
func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if req.Platform == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty platform")
	}

	if req.LikesNeeded < 0 {
		return nil, errorx.New(errorx.BadRequest, "Likes needed must be positive")
	}

	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	likesNeeded := req.LikesNeeded
	if likesNeeded == 0 {
		likesNeeded = xcontext.Configs(ctx).Post.DefaultLikesNeeded
	}

	post := &entity.Post{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		Platform:    req.Platform,
		URL:         req.URL,
		Status:      entity.PostPending,
		LikesNeeded: likesNeeded,
	}

	if user.IsPremium {
		post.Status = entity.PostApproved
		post.LikesNeeded = 0
		post.ApprovedAt = time.Now()
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{ID: post.ID, Status: string(post.Status)}, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetPostResponse{Post: model.ConvertPost(post)}, nil
}

func (d *postDomain) GetList(
	ctx context.Context, req *model.GetListPostsRequest,
) (*model.GetListPostsResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	filter := repository.PostFilter{UserID: req.UserID}
	if req.Status != "" {
		status, err := enum.ToEnum[entity.PostStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = status
	}

	result, err := d.postRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list posts: %v", err)
		return nil, errorx.Unknown
	}

	posts := []model.Post{}
	for i := range result {
		posts = append(posts, model.ConvertPost(&result[i]))
	}

	return &model.GetListPostsResponse{Posts: posts}, nil
}

// Review is the moderator path. Approval pays the owner the post_approved
// value inside the same transaction as the transition; rejection pays
// nothing. Both respect the terminal-state rule.
func (d *postDomain) Review(
	ctx context.Context, req *model.ReviewPostRequest,
) (*model.ReviewPostResponse, error) {
	if req.PostID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	if req.Action != "approve" && req.Action != "reject" {
		return nil, errorx.New(errorx.BadRequest, "Action must be approve or reject")
	}

	if err := d.roleVerifier.Verify(ctx, entity.ReviewGroup...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.Status != entity.PostPending {
		return nil, errorx.New(errorx.BadRequest, "Only pending posts can be reviewed")
	}

	if req.Action == "reject" {
		if err := d.postRepo.Reject(ctx, post.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.BadRequest, "Only pending posts can be reviewed")
			}

			xcontext.Logger(ctx).Errorf("Cannot reject post: %v", err)
			return nil, errorx.Unknown
		}

		return &model.ReviewPostResponse{}, nil
	}

	value, err := entity.ValueOf(entity.ActionPostApproved)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot resolve approval value: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.Approve(ctx, post.ID, value.Points); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.BadRequest, "Only pending posts can be reviewed")
		}

		xcontext.Logger(ctx).Errorf("Cannot approve post: %v", err)
		return nil, errorx.Unknown
	}

	if err := grantPoints(ctx, d.pointsHistoryRepo, d.userRepo, post.UserID, entity.ActionPostApproved, value, post.ID); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.leaderboard.IncreasePoint(ctx, post.UserID, value.Points); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update cached leaderboard: %v", err)
	}

	return &model.ReviewPostResponse{}, nil
}
