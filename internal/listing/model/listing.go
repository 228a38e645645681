package model

import (
	"time"

	"github.com/google/uuid"
)

type Listing struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SellerID uuid.UUID `bun:",notnull,type:uuid"`

	Title string `bun:",notnull"`
	Price int64  `bun:",notnull,default:0"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type ListingImage struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ListingID uuid.UUID `bun:",notnull,type:uuid"`
	Listing   *Listing  `bun:"rel:belongs-to,join:listing_id=id"`

	URL       string `bun:",notnull"`
	Thumbnail string `bun:",nullzero"`
	SortOrder int    `bun:",notnull,default:0"`
}
