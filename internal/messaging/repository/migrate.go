package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/NedohAR/marketplace-platform/internal/messaging/model"
)

// Migrate creates the messaging tables and indexes. NULLS NOT DISTINCT
// on the pair+listing index keeps the listing-less conversation unique
// per pair too (Postgres 15+).
func Migrate(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*model.Conversation)(nil),
		(*model.Message)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "migrate.CreateTable %T: ", t)
		}
	}

	ddl := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_conversations_pair_listing
			ON conversations (low_id, high_id, listing_id) NULLS NOT DISTINCT`,
		`CREATE INDEX IF NOT EXISTS idx_messages_conversation_created
			ON messages (conversation_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_recipient_unread
			ON messages (recipient_id, is_read)`,
	}
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "migrate.CreateIndex: ")
		}
	}
	return nil
}
