package models

// User is a login account. PasswordHash is a bcrypt digest; it is part of the
// stored record shape but must never leave the auth layer in responses.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	PasswordHash string `json:"passwordHash" gorm:"size:100;not null"`
}
