package entity

type User struct {
	Base

	FirstName string
	LastName  string
	Email     string `gorm:"unique;not null"`

	// Points is the denormalized running balance. It is only mutated in the
	// same transaction as the matching points_histories row.
	Points int64 `gorm:"not null;default:0"`

	IsPremium bool   `gorm:"not null;default:false"`
	Role      string `gorm:"default:USER"`
}

const (
	AdminRole     = "ADMIN"
	ModeratorRole = "MODERATOR"
	UserRole      = "USER"
)

// ReviewGroup is the set of roles allowed to moderate, from reviewing
// posts to refreshing the leaderboard cache.
var ReviewGroup = []string{AdminRole, ModeratorRole}
