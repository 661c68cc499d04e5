package entity

import "time"

// User is the admin identity that owns the session. There is no role or
// permission model; any authenticated user has full access.
type User struct {
	UserID       int64     `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
