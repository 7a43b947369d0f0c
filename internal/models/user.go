package models

// Account is a registered user. The persisted JSON document keeps the
// bcrypt hash under the legacy "password" key; the hash is never included
// in any response payload.
type Account struct {
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"password"`
}
