package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldUsername  = "username"
	FieldFullName  = "full_name"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is a customer or staff account. Level carries the role.
type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Level     string     `db:"level"`
	Username  *string    `db:"username"`
	FullName  *string    `db:"full_name"`
	Phone     *string    `db:"phone"`
	Address   *string    `db:"address"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
