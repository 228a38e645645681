package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/NedohAR/marketplace-platform/internal/messaging"
	"github.com/NedohAR/marketplace-platform/internal/user/model"
)

// ProfileProvider is the read-only participant lookup the messaging core
// consumes. Account management itself lives with the identity service.
type ProfileProvider struct {
	db *bun.DB
}

func NewProfileProvider(db *bun.DB) *ProfileProvider {
	return &ProfileProvider{db: db}
}

func (p *ProfileProvider) GetProfile(ctx context.Context, userID uuid.UUID) (*messaging.ParticipantDTO, error) {
	u := new(model.User)
	err := p.db.NewSelect().Model(u).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "profileProvider.GetProfile.Scan: ")
	}
	dto := toParticipant(u)
	return &dto, nil
}

func (p *ProfileProvider) GetProfiles(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]messaging.ParticipantDTO, error) {
	result := make(map[uuid.UUID]messaging.ParticipantDTO, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var users []model.User
	err := p.db.NewSelect().Model(&users).
		Where("id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileProvider.GetProfiles.Scan: ")
	}

	for i := range users {
		result[users[i].ID] = toParticipant(&users[i])
	}
	return result, nil
}

func toParticipant(u *model.User) messaging.ParticipantDTO {
	name := u.Name
	if name == "" {
		name = u.Username
	}
	return messaging.ParticipantDTO{
		ID:       u.ID,
		Username: u.Username,
		Name:     name,
		Avatar:   u.Avatar,
	}
}
