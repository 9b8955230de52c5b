package entity

import "time"

// Interaction is the de-duplication ledger: at most one row may exist per
// (user, post, action kind). The composite primary key makes the storage
// engine enforce it, closing the check-then-insert race.
type Interaction struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	PostID string `gorm:"primaryKey"`
	Post   Post   `gorm:"foreignKey:PostID"`

	ActionKind ActionKind `gorm:"primaryKey"`

	CreatedAt time.Time
}
