package model

import "hospitality/shared/model"

const (
	TableName  = "specials"
	EntityName = "special"

	FieldID            = "id"
	FieldName          = "name"
	FieldSpecial       = "special"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldOriginalPrice = "original_price"
	FieldCuisine       = "cuisine"
	FieldOffer         = "offer"
	FieldRating        = "rating"
	FieldImage         = "image"
	FieldSearchTerms   = "search_terms"
)

type Special struct {
	ID            int64   `db:"id"`
	Name          string  `db:"name"`
	Special       string  `db:"special"`
	Description   string  `db:"description"`
	Price         float64 `db:"price"`
	OriginalPrice float64 `db:"original_price"`
	Cuisine       string  `db:"cuisine"`
	Offer         string  `db:"offer"`
	Rating        float64 `db:"rating"`
	Image         string  `db:"image"`
	SearchTerms   string  `db:"search_terms"`
	model.Metadata
}
