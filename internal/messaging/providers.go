package messaging

import (
	"context"

	"github.com/google/uuid"
)

// External collaborators. The core stores only foreign ids; display
// fields are joined in at read time through these interfaces so they can
// never go stale in messaging rows.

type ProfileProvider interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ParticipantDTO, error)
	GetProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]ParticipantDTO, error)
}

type ListingProvider interface {
	GetListingSummary(ctx context.Context, listingID uuid.UUID) (*ListingSummaryDTO, error)
	GetListingSummaries(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID]ListingSummaryDTO, error)
}
