package models

import "time"

// User is owned by the auth layer. This service only reads it.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;size:254;not null;uniqueIndex:uk_users_email" json:"email"`
	Username  string    `gorm:"column:username;size:150;not null;uniqueIndex:uk_users_username" json:"username"`
	FirstName string    `gorm:"column:first_name;size:150;not null;default:''" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:150;not null;default:''" json:"last_name"`
	Avatar    string    `gorm:"column:avatar;size:255;not null;default:''" json:"avatar"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
