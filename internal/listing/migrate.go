package listing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/NedohAR/marketplace-platform/internal/listing/model"
)

// Migrate creates the listing tables for local development; in
// deployment the listing service owns this schema.
func Migrate(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*model.Listing)(nil),
		(*model.ListingImage)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "listing.Migrate.CreateTable %T: ", t)
		}
	}
	return nil
}
