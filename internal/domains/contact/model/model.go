package model

import "hospitality/shared/model"

const (
	TableName  = "contact_messages"
	EntityName = "contact message"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

type ContactMessage struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Service string `db:"service"`
	Message string `db:"message"`
	model.Metadata
}
