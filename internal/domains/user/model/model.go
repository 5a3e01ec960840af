package model

import "royalpalace/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
	FieldRole     = "role"
	FieldActive   = "active"
)

type User struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	Phone    *string `db:"phone"`
	Role     string  `db:"role"`
	Active   bool    `db:"active"`
	model.Metadata
}
