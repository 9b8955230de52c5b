package migration

import (
	"context"

	"github.com/boostbuddies/backend/internal/entity"
	"github.com/boostbuddies/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Post{},
		&entity.Interaction{},
		&entity.PointsHistory{},
	)
}
