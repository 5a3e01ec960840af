package model

import (
	"royalpalace/shared/model"
)

const (
	TableName  = "contact_messages"
	EntityName = "contact_message"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldRead    = "read"
)

type ContactMessage struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   *string `db:"phone"`
	Subject string  `db:"subject"`
	Message string  `db:"message"`
	Read    bool    `db:"read"`
	model.Metadata
}
