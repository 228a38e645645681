package messaging

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Input commands
type StartConversationCommand struct {
	CurrentUserID uuid.UUID
	OtherUserID   uuid.UUID
	ListingID     *uuid.UUID
}

type SendMessageCommand struct {
	SenderID uuid.UUID

	// Exactly one of ConversationID / OtherUserID is required. When only
	// OtherUserID is given the conversation is created on first contact.
	ConversationID *uuid.UUID
	OtherUserID    *uuid.UUID

	Content         string
	ParentMessageID *uuid.UUID
	ListingID       *uuid.UUID
}

// Output DTOs
type ParticipantDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar,omitempty"`
}

type ListingSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Price        int64     `json:"price"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

type ParentMessageDTO struct {
	ID       uuid.UUID `json:"id"`
	Content  string    `json:"content"`
	SenderID uuid.UUID `json:"sender_id"`
}

type MessageDTO struct {
	ID              uuid.UUID         `json:"id"`
	ConversationID  uuid.UUID         `json:"conversation_id"`
	SenderID        uuid.UUID         `json:"sender_id"`
	SenderName      string            `json:"sender_name"`
	SenderAvatar    string            `json:"sender_avatar,omitempty"`
	RecipientID     uuid.UUID         `json:"recipient_id"`
	Content         string            `json:"content"`
	ListingID       *uuid.UUID        `json:"listing_id,omitempty"`
	ParentMessageID *uuid.UUID        `json:"parent_message_id,omitempty"`
	ParentMessage   *ParentMessageDTO `json:"parent_message,omitempty"`
	IsRead          bool              `json:"is_read"`
	CreatedAt       time.Time         `json:"created_at"`
}

type LastMessageDTO struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConversationSummaryDTO struct {
	ID            uuid.UUID          `json:"id"`
	OtherUser     ParticipantDTO     `json:"other_user"`
	Listing       *ListingSummaryDTO `json:"listing,omitempty"`
	LastMessage   *LastMessageDTO    `json:"last_message"`
	LastMessageAt time.Time          `json:"last_message_at"`
	CreatedAt     time.Time          `json:"created_at"`
	UnreadCount   int                `json:"unread_count"`
}

type ConversationDetailDTO struct {
	Conversation ConversationSummaryDTO `json:"conversation"`
	Messages     []MessageDTO           `json:"messages"`
}
