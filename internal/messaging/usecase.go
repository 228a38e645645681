package messaging

import (
	"context"

	"github.com/google/uuid"
)

type MessagingUsecase interface {
	// StartConversation is get-or-create keyed by the canonical pair plus
	// the optional listing. Self-conversations are rejected before any
	// store access. A plain lookup never bumps timestamps.
	StartConversation(ctx context.Context, cmd StartConversationCommand) (*ConversationSummaryDTO, error)

	// ListConversations returns every conversation the viewer takes part
	// in, ordered last activity first, enriched with the other
	// participant, listing summary, last message and unread count.
	ListConversations(ctx context.Context, viewerID uuid.UUID) ([]ConversationSummaryDTO, error)

	// GetConversationDetail combines the access-checked summary with the
	// full thread. Viewing marks the viewer's unread messages read, so
	// the returned summary always carries unread 0.
	GetConversationDetail(ctx context.Context, conversationID, viewerID uuid.UUID) (*ConversationDetailDTO, error)

	// ListMessages returns the thread oldest first and marks every
	// message addressed to the viewer as read (read-on-view).
	ListMessages(ctx context.Context, conversationID, viewerID uuid.UUID) ([]MessageDTO, error)

	// SendMessage appends to an existing conversation, or performs first
	// contact when only the other user is given. The recipient is always
	// derived from the stored pair.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	UnreadCount(ctx context.Context, conversationID, viewerID uuid.UUID) (int, error)

	// UnreadTotal sums unread counts over all of the viewer's
	// conversations.
	UnreadTotal(ctx context.Context, viewerID uuid.UUID) (int, error)
}
