package model

import "hospitality/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldInterest = "interest"
	FieldLocation = "location"
	FieldMessage  = "message"
)

type Inquiry struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Interest string `db:"interest"`
	Location string `db:"location"`
	Message  string `db:"message"`
	model.Metadata
}
