package model

import "hospitality/shared/model"

const (
	TableName  = "information_requests"
	EntityName = "information request"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldVenueType = "venue_type"
	FieldMessage   = "message"
	FieldStatus    = "status"

	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

type InformationRequest struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	VenueType string `db:"venue_type"`
	Message   string `db:"message"`
	Status    string `db:"status"`
	model.Metadata
}
