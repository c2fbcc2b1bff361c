package model

import (
	"fmt"
	"time"
)

// User is a member of the paginated users collection.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserDTO is used for sending user data in HTTP responses.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the table for User.
func (User) TableName() string {
	return "users"
}

// ToDTO converts the User model into a UserDTO for responses.
func (u *User) ToDTO() *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// SeedUser builds the fixture user stored under id.
func SeedUser(id uint) User {
	return User{
		ID:       id,
		Username: fmt.Sprintf("user%03d", id),
		Email:    fmt.Sprintf("user%03d@example.com", id),
	}
}
