package model

import "time"

const (
	TableName  = "newsletter_subscribers"
	EntityName = "subscriber"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldSubscribedAt = "subscribed_at"
)

type Subscriber struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	SubscribedAt time.Time `db:"subscribed_at"`
}
