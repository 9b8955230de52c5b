package entity

import "database/sql"

// PointsHistory is the append-only audit log of every points grant. Rows are
// never updated or deleted; the sum of Points per user always equals that
// user's balance when read in the same transaction.
type PointsHistory struct {
	Base

	UserID string `gorm:"index;not null;uniqueIndex:idx_points_histories_bonus_day"`
	User   User   `gorm:"foreignKey:UserID"`

	// Points is a signed delta. Every grant today is positive, but the log
	// does not assume it.
	Points int64 `gorm:"not null"`

	ActionKind  ActionKind `gorm:"index;not null"`
	Description string

	PostID sql.NullString
	Post   Post `gorm:"foreignKey:PostID"`

	// BonusDay is set only on daily_bonus rows, as the server-local day of
	// the grant. The unique index with UserID is what makes the bonus
	// once-per-day under concurrent claims; NULL values never collide, so
	// every other kind of grant is unaffected.
	BonusDay sql.NullString `gorm:"uniqueIndex:idx_points_histories_bonus_day"`

	Metadata Map `gorm:"type:text"`
}
