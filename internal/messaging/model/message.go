package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderID uuid.UUID `bun:",notnull,type:uuid"`

	// Always the other participant of the conversation. Derived at send
	// time, never taken from caller input.
	RecipientID uuid.UUID `bun:",notnull,type:uuid"`

	Content string `bun:",notnull"`

	// Defaults to the conversation's listing when not supplied.
	ListingID *uuid.UUID `bun:",type:uuid"`

	// Optional reply/quote reference to an earlier message in the same
	// conversation.
	ParentMessageID *uuid.UUID `bun:",type:uuid"`
	ParentMessage   *Message   `bun:"rel:belongs-to,join:parent_message_id=id"`

	IsRead bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
