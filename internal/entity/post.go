package entity

import (
	"time"

	"github.com/boostbuddies/backend/pkg/enum"
)

type PostStatus string

var (
	PostPending  = enum.New(PostStatus("pending"))
	PostApproved = enum.New(PostStatus("approved"))
	PostRejected = enum.New(PostStatus("rejected"))
)

type Post struct {
	Base

	UserID string `gorm:"index;not null"`
	User   User   `gorm:"foreignKey:UserID"`

	// Platform is a free-form tag of where the linked content lives, e.g.
	// "twitter" or "instagram".
	Platform string
	URL      string

	// Status transitions are monotonic: pending may become approved or
	// rejected, terminal states never revert.
	Status PostStatus `gorm:"index"`

	// LikesReceived counts qualifying engagements of any kind, not only
	// likes. It only moves while Status is pending.
	LikesReceived int `gorm:"not null;default:0"`
	LikesNeeded   int `gorm:"not null;default:10"`

	// PointsEarned is frozen at the approval transition; zero before.
	PointsEarned int64 `gorm:"not null;default:0"`
	ApprovedAt   time.Time
}
