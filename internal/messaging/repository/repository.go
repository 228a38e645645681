package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/NedohAR/marketplace-platform/internal/messaging/model"
	"github.com/NedohAR/marketplace-platform/pkg/logger"
)

type ConversationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConversationRepository(db *bun.DB, logger logger.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: &logger,
	}
}

// pgUniqueViolation is the SQLSTATE for a unique index conflict.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation
}

func (r *ConversationRepository) GetOrCreate(ctx context.Context, lowID, highID uuid.UUID, listingID *uuid.UUID) (*model.Conversation, bool, error) {
	conv, err := r.findByTriple(ctx, lowID, highID, listingID)
	if err != nil {
		return nil, false, err
	}
	if conv != nil {
		return conv, false, nil
	}

	conv = &model.Conversation{
		LowID:     lowID,
		HighID:    highID,
		ListingID: listingID,
	}
	_, err = r.db.NewInsert().Model(conv).Returning("*").Exec(ctx)
	if err == nil {
		return conv, true, nil
	}

	// Lost the first-contact race: the unique index on the triple caught
	// a concurrent insert. Re-read the winner's row.
	if isUniqueViolation(err) {
		conv, rerr := r.findByTriple(ctx, lowID, highID, listingID)
		if rerr != nil {
			return nil, false, rerr
		}
		if conv == nil {
			return nil, false, errors.Wrap(err, "convRepo.GetOrCreate.ReRead: row vanished after conflict")
		}
		return conv, false, nil
	}
	return nil, false, errors.Wrap(err, "convRepo.GetOrCreate.Insert: ")
}

func (r *ConversationRepository) findByTriple(ctx context.Context, lowID, highID uuid.UUID, listingID *uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	q := r.db.NewSelect().Model(conv).
		Where("low_id = ? AND high_id = ?", lowID, highID)
	if listingID == nil {
		q = q.Where("listing_id IS NULL")
	} else {
		q = q.Where("listing_id = ?", *listingID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "convRepo.findByTriple.Scan: ")
	}
	return conv, nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "convRepo.GetByID.Scan: ")
	}
	return conv, nil
}

func (r *ConversationRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.db.NewSelect().Model(&convs).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("low_id = ?", userID).WhereOr("high_id = ?", userID)
		}).
		Order("last_message_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.ListByParticipant.Scan: ")
	}
	return convs, nil
}

func (r *ConversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "convRepo.CreateMessage.Insert: ")
		}

		// The bump reuses the message's own timestamp so a list poller can
		// never see a newer message behind a stale last_message_at.
		_, err := tx.NewUpdate().Model((*model.Conversation)(nil)).
			Set("last_message_at = ?", msg.CreatedAt).
			Where("id = ?", msg.ConversationID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "convRepo.CreateMessage.Bump: ")
		}
		return nil
	})
	return err
}

func (r *ConversationRepository) GetMessageInConversation(ctx context.Context, messageID, conversationID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		Where("id = ? AND conversation_id = ?", messageID, conversationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "convRepo.GetMessageInConversation.Scan: ")
	}
	return msg, nil
}

func (r *ConversationRepository) ListMessagesMarkingRead(ctx context.Context, conversationID, viewerID uuid.UUID) ([]model.Message, error) {
	var msgs []model.Message

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().Model(&msgs).
			Where("conversation_id = ?", conversationID).
			Order("created_at ASC", "id ASC").
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "convRepo.ListMessagesMarkingRead.Scan: ")
		}

		_, err = tx.NewUpdate().Model((*model.Message)(nil)).
			Set("is_read = TRUE").
			Where("conversation_id = ? AND recipient_id = ? AND is_read = FALSE", conversationID, viewerID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "convRepo.ListMessagesMarkingRead.MarkRead: ")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reflect the flip in the snapshot being served so the thread and the
	// unread count derived from it agree within this call.
	for i := range msgs {
		if msgs[i].RecipientID == viewerID {
			msgs[i].IsRead = true
		}
	}
	return msgs, nil
}

func (r *ConversationRepository) LastMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC", "id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "convRepo.LastMessage.Scan: ")
	}
	return msg, nil
}

func (r *ConversationRepository) LastMessages(ctx context.Context, conversationIDs []uuid.UUID) (map[uuid.UUID]model.Message, error) {
	latest := make(map[uuid.UUID]model.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return latest, nil
	}

	var msgs []model.Message
	err := r.db.NewSelect().Model(&msgs).
		ColumnExpr("DISTINCT ON (conversation_id) *").
		Where("conversation_id IN (?)", bun.In(conversationIDs)).
		Order("conversation_id", "created_at DESC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.LastMessages.Scan: ")
	}

	for _, msg := range msgs {
		latest[msg.ConversationID] = msg
	}
	return latest, nil
}

func (r *ConversationRepository) UnreadCount(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().Model((*model.Message)(nil)).
		Where("conversation_id = ? AND recipient_id = ? AND is_read = FALSE", conversationID, viewerID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "convRepo.UnreadCount.Count: ")
	}
	return count, nil
}

func (r *ConversationRepository) UnreadCounts(ctx context.Context, viewerID uuid.UUID, conversationIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ConversationID uuid.UUID `bun:"conversation_id"`
		Count          int       `bun:"count"`
	}
	err := r.db.NewSelect().Model((*model.Message)(nil)).
		Column("conversation_id").
		ColumnExpr("count(*) AS count").
		Where("conversation_id IN (?)", bun.In(conversationIDs)).
		Where("recipient_id = ? AND is_read = FALSE", viewerID).
		Group("conversation_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "convRepo.UnreadCounts.Scan: ")
	}

	for _, row := range rows {
		counts[row.ConversationID] = row.Count
	}
	return counts, nil
}
