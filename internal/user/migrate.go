package user

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/NedohAR/marketplace-platform/internal/user/model"
)

// Migrate creates the users table for local development; in deployment
// the identity service owns this schema.
func Migrate(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().Model((*model.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		return errors.Wrap(err, "user.Migrate.CreateTable: ")
	}
	return nil
}
