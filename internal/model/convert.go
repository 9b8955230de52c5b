package model

import (
	"time"

	"github.com/boostbuddies/backend/internal/entity"
)

func ConvertUser(u *entity.User) User {
	return User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Points:    u.Points,
		IsPremium: u.IsPremium,
		Role:      u.Role,
		JoinedAt:  u.CreatedAt.Format(time.RFC3339Nano),
	}
}

func ConvertPost(p *entity.Post) Post {
	post := Post{
		ID:            p.ID,
		UserID:        p.UserID,
		Platform:      p.Platform,
		URL:           p.URL,
		Status:        string(p.Status),
		LikesReceived: p.LikesReceived,
		LikesNeeded:   p.LikesNeeded,
		PointsEarned:  p.PointsEarned,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339Nano),
	}

	if !p.ApprovedAt.IsZero() {
		post.ApprovedAt = p.ApprovedAt.Format(time.RFC3339Nano)
	}

	return post
}

func ConvertPointsHistory(h *entity.PointsHistory) PointsHistory {
	return PointsHistory{
		ID:          h.ID,
		Points:      h.Points,
		ActionKind:  string(h.ActionKind),
		Description: h.Description,
		PostID:      h.PostID.String,
		CreatedAt:   h.CreatedAt.Format(time.RFC3339Nano),
	}
}
