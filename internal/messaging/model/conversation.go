package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Canonical participant pair: LowID sorts before HighID in string
	// order. Fixed at creation, never reordered.
	LowID  uuid.UUID `bun:",notnull,type:uuid"`
	HighID uuid.UUID `bun:",notnull,type:uuid"`

	// nil = general conversation not tied to any listing.
	ListingID *uuid.UUID `bun:",type:uuid"`

	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	LastMessageAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration (NULLS NOT DISTINCT so the listing-less
	// conversation is also one-per-pair):
	// CREATE UNIQUE INDEX idx_conversations_pair_listing
	//   ON conversations (low_id, high_id, listing_id) NULLS NOT DISTINCT;
}

// CanonicalPair orders two participant ids into the stable (low, high)
// form so that (A,B) and (B,A) always address the same conversation.
func CanonicalPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if strings.Compare(a.String(), b.String()) < 0 {
		return a, b
	}
	return b, a
}

func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.LowID == userID || c.HighID == userID
}

// OtherParticipant resolves the participant that is not viewerID.
// Callers must access-check first; for a non-participant viewer this
// degenerates to LowID.
func (c *Conversation) OtherParticipant(viewerID uuid.UUID) uuid.UUID {
	if c.LowID == viewerID {
		return c.HighID
	}
	return c.LowID
}
