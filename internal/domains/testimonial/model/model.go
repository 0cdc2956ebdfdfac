package model

import "hospitality/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID          = "id"
	FieldText        = "text"
	FieldName        = "name"
	FieldDesignation = "designation"
	FieldImage       = "image"
)

type Testimonial struct {
	ID          int64  `db:"id"`
	Text        string `db:"text"`
	Name        string `db:"name"`
	Designation string `db:"designation"`
	Image       string `db:"image"`
	model.Metadata
}
