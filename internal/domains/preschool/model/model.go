package model

import "hospitality/shared/model"

const (
	TableName  = "preschool_leads"
	EntityName = "preschool lead"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldInterest = "interest"
	FieldMessage  = "message"
)

type Lead struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Interest string `db:"interest"`
	Message  string `db:"message"`
	model.Metadata
}
