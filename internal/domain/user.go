package domain

import (
	"context"
	"errors"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/model"
	"github.com/boostbuddies/backend/internal/repository"
	"github.com/boostbuddies/backend/pkg/errorx"
	"github.com/boostbuddies/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetStats(context.Context, *model.GetUserStatsRequest) (*model.GetUserStatsResponse, error)
	GetPointsHistory(context.Context, *model.GetPointsHistoryRequest) (*model.GetPointsHistoryResponse, error)
}

type userDomain struct {
	userRepo          repository.UserRepository
	postRepo          repository.PostRepository
	interactionRepo   repository.InteractionRepository
	pointsHistoryRepo repository.PointsHistoryRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	interactionRepo repository.InteractionRepository,
	pointsHistoryRepo repository.PointsHistoryRepository,
) *userDomain {
	return &userDomain{
		userRepo:          userRepo,
		postRepo:          postRepo,
		interactionRepo:   interactionRepo,
		pointsHistoryRepo: pointsHistoryRepo,
	}
}

func (d *userDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Email == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty email")
	}

	user := &entity.User{
		Base:      entity.Base{ID: uuid.NewString()},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      entity.UserRole,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, errorx.New(errorx.AlreadyExists, "This email has already been registered")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		user.ID, model.AccessToken{ID: user.ID, Email: user.Email})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{ID: user.ID, AccessToken: token}, nil
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: model.ConvertUser(user)}, nil
}

func (d *userDomain) GetStats(
	ctx context.Context, req *model.GetUserStatsRequest,
) (*model.GetUserStatsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	totalPosts, err := d.postRepo.Count(ctx, repository.PostFilter{UserID: userID})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	approvedPosts, err := d.postRepo.Count(ctx,
		repository.PostFilter{UserID: userID, Status: entity.PostApproved})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count approved posts: %v", err)
		return nil, errorx.Unknown
	}

	totalInteractions, err := d.interactionRepo.CountByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count interactions: %v", err)
		return nil, errorx.Unknown
	}

	higher, err := d.userRepo.CountWithMorePoints(ctx, user.Points)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot compute rank: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserStatsResponse{
		TotalPosts:        totalPosts,
		ApprovedPosts:     approvedPosts,
		TotalInteractions: totalInteractions,
		Points:            user.Points,
		Rank:              higher + 1,
		IsPremium:         user.IsPremium,
		JoinDate:          user.CreatedAt.Format("2006-01-02"),
	}, nil
}

func (d *userDomain) GetPointsHistory(
	ctx context.Context, req *model.GetPointsHistoryRequest,
) (*model.GetPointsHistoryResponse, error) {
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

	result, err := d.pointsHistoryRepo.GetListByUserID(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get points history: %v", err)
		return nil, errorx.Unknown
	}

	history := []model.PointsHistory{}
	for i := range result {
		history = append(history, model.ConvertPointsHistory(&result[i]))
	}

	return &model.GetPointsHistoryResponse{History: history}, nil
}
