package messaging

import (
	"context"

	"github.com/google/uuid"

	"github.com/NedohAR/marketplace-platform/internal/messaging/model"
)

type ConversationRepository interface {
	// GetOrCreate looks up the conversation for the canonical
	// (low, high, listing) triple and creates it when absent. The store's
	// unique index is the authority under concurrent first contact: a
	// losing insert is resolved by re-reading the winner's row, never
	// surfaced. The bool result reports whether this call created the row.
	GetOrCreate(ctx context.Context, lowID, highID uuid.UUID, listingID *uuid.UUID) (*model.Conversation, bool, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)

	// ListByParticipant returns every conversation the user takes part
	// in, newest activity first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]model.Conversation, error)

	// CreateMessage appends the message and bumps the owning
	// conversation's last_message_at to the message timestamp in one
	// transaction.
	CreateMessage(ctx context.Context, msg *model.Message) error

	// GetMessageInConversation resolves a message only if it belongs to
	// the given conversation.
	GetMessageInConversation(ctx context.Context, messageID, conversationID uuid.UUID) (*model.Message, error)

	// ListMessagesMarkingRead returns the full thread in created_at order
	// and, in the same transaction, flips is_read on every returned
	// message addressed to viewerID. Idempotent.
	ListMessagesMarkingRead(ctx context.Context, conversationID, viewerID uuid.UUID) ([]model.Message, error)

	// LastMessage returns the newest message or nil when none sent yet.
	LastMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error)

	// LastMessages resolves the newest message per conversation in one
	// query. Conversations without messages are absent from the map.
	LastMessages(ctx context.Context, conversationIDs []uuid.UUID) (map[uuid.UUID]model.Message, error)

	UnreadCount(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error)

	// UnreadCounts computes per-conversation unread counts for the viewer
	// in one grouped query. Conversations with no unread messages are
	// absent from the result map.
	UnreadCounts(ctx context.Context, viewerID uuid.UUID, conversationIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
