package model

import "hospitality/shared/model"

const (
	TableName  = "hotel_items"
	EntityName = "hotel item"

	FieldID          = "id"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldRating      = "rating"
	FieldFeatures    = "features"
	FieldImageURL    = "image_url"
)

type HotelItem struct {
	ID          int64   `db:"id"`
	Category    string  `db:"category"`
	Subcategory string  `db:"subcategory"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Location    string  `db:"location"`
	Rating      float64 `db:"rating"`
	Features    string  `db:"features"`
	ImageURL    string  `db:"image_url"`
	model.Metadata
}
