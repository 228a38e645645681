package listing

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/NedohAR/marketplace-platform/internal/listing/model"
	"github.com/NedohAR/marketplace-platform/internal/messaging"
)

// SummaryProvider is the read-only listing lookup the messaging core
// uses for conversation context. Listing CRUD lives elsewhere.
type SummaryProvider struct {
	db *bun.DB
}

func NewSummaryProvider(db *bun.DB) *SummaryProvider {
	return &SummaryProvider{db: db}
}

func (p *SummaryProvider) GetListingSummary(ctx context.Context, listingID uuid.UUID) (*messaging.ListingSummaryDTO, error) {
	l := new(model.Listing)
	err := p.db.NewSelect().Model(l).Where("id = ?", listingID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listingProvider.GetListingSummary.Scan: ")
	}

	dto := messaging.ListingSummaryDTO{
		ID:    l.ID,
		Title: l.Title,
		Price: l.Price,
	}

	img := new(model.ListingImage)
	err = p.db.NewSelect().Model(img).
		Where("listing_id = ?", listingID).
		Order("sort_order ASC").
		Limit(1).
		Scan(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "listingProvider.GetListingSummary.Image: ")
	}
	if err == nil {
		dto.ThumbnailURL = thumbnailOf(img)
	}
	return &dto, nil
}

func (p *SummaryProvider) GetListingSummaries(ctx context.Context, listingIDs []uuid.UUID) (map[uuid.UUID]messaging.ListingSummaryDTO, error) {
	result := make(map[uuid.UUID]messaging.ListingSummaryDTO, len(listingIDs))
	if len(listingIDs) == 0 {
		return result, nil
	}

	var listings []model.Listing
	err := p.db.NewSelect().Model(&listings).
		Where("id IN (?)", bun.In(listingIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listingProvider.GetListingSummaries.Scan: ")
	}

	var images []model.ListingImage
	err = p.db.NewSelect().Model(&images).
		ColumnExpr("DISTINCT ON (listing_id) *").
		Where("listing_id IN (?)", bun.In(listingIDs)).
		Order("listing_id", "sort_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listingProvider.GetListingSummaries.Images: ")
	}

	thumbs := make(map[uuid.UUID]string, len(images))
	for i := range images {
		thumbs[images[i].ListingID] = thumbnailOf(&images[i])
	}

	for _, l := range listings {
		result[l.ID] = messaging.ListingSummaryDTO{
			ID:           l.ID,
			Title:        l.Title,
			Price:        l.Price,
			ThumbnailURL: thumbs[l.ID],
		}
	}
	return result, nil
}

func thumbnailOf(img *model.ListingImage) string {
	if img.Thumbnail != "" {
		return img.Thumbnail
	}
	return img.URL
}
