package model

import "hospitality/shared/model"

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID              = "id"
	FieldCustomerName    = "customer_name"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldAddress         = "address"
	FieldItems           = "items"
	FieldStatus          = "status"
	FieldRejectionReason = "rejection_reason"
	FieldPaymentMethod   = "payment_method"

	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	PaymentMethodUPI = "upi"
	PaymentMethodCOD = "cod"
)

type Order struct {
	ID              int64  `db:"id"`
	CustomerName    string `db:"customer_name"`
	Phone           string `db:"phone"`
	Email           string `db:"email"`
	Address         string `db:"address"`
	Items           string `db:"items"`
	Status          string `db:"status"`
	RejectionReason string `db:"rejection_reason"`
	PaymentMethod   string `db:"payment_method"`
	model.Metadata
}
