package model

import "hospitality/shared/model"

const (
	TableName  = "office_locations"
	EntityName = "office location"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImagePath   = "image_path"
)

type OfficeLocation struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	ImagePath   string `db:"image_path"`
	model.Metadata
}
