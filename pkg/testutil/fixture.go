package testutil

import (
	"context"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:      entity.Base{ID: "user1"},
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
		Role:      entity.UserRole,
	}

	User2 = entity.User{
		Base:      entity.Base{ID: "user2"},
		FirstName: "Bob",
		LastName:  "Tran",
		Email:     "bob@example.com",
		Role:      entity.UserRole,
	}

	User3 = entity.User{
		Base:      entity.Base{ID: "user3"},
		FirstName: "Carol",
		LastName:  "Le",
		Email:     "carol@example.com",
		Role:      entity.UserRole,
	}

	Moderator = entity.User{
		Base:      entity.Base{ID: "moderator"},
		FirstName: "Mod",
		LastName:  "Pham",
		Email:     "moderator@example.com",
		Role:      entity.ModeratorRole,
	}

	PremiumUser = entity.User{
		Base:      entity.Base{ID: "premium_user"},
		FirstName: "Peter",
		LastName:  "Vo",
		Email:     "premium@example.com",
		Role:      entity.UserRole,
		IsPremium: true,
	}

	Post1 = entity.Post{
		Base:        entity.Base{ID: "user1_post1"},
		UserID:      "user1",
		Platform:    "instagram",
		URL:         "https://instagram.com/p/user1_post1",
		Status:      entity.PostPending,
		LikesNeeded: 10,
	}

	Post2 = entity.Post{
		Base:        entity.Base{ID: "user2_post1"},
		UserID:      "user2",
		Platform:    "tiktok",
		URL:         "https://tiktok.com/@user2/video/1",
		Status:      entity.PostPending,
		LikesNeeded: 3,
	}
)

// CreateFixtureContext seeds the mock database with the fixture users and
// posts above. Tests mutate copies in the database, never these values.
func CreateFixtureContext(ctx context.Context) {
	InsertUsers(ctx)
	InsertPosts(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, Moderator, PremiumUser} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()
	for _, post := range []entity.Post{Post1, Post2} {
		post := post
		if err := postRepo.Create(ctx, &post); err != nil {
			panic(err)
		}
	}
}
