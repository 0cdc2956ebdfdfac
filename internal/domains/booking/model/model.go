package model

import "hospitality/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldSpecialID    = "special_id"
	FieldCustomerName = "customer_name"
	FieldPhone        = "phone"
	FieldAddress      = "address"
)

type Booking struct {
	ID           int64  `db:"id"`
	SpecialID    int64  `db:"special_id"`
	CustomerName string `db:"customer_name"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	model.Metadata
}
