package model

import "hospitality/shared/model"

const (
	TableName  = "featured_locations"
	EntityName = "featured location"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldRegion      = "region"
)

type FeaturedLocation struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Region      string `db:"region"`
	model.Metadata
}
