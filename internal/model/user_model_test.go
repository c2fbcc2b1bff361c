package model_test

import (
	"testing"
	"time"

	"github.com/fuzumoe/gopaginate/internal/model"
)

// TestUserToDTO tests the conversion of User model to UserDTO.
func TestUserToDTO(t *testing.T) {
	createdAt := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
	user := &model.User{
		ID:        1,
		Username:  "testuser",
		Email:     "test@example.com",
		CreatedAt: createdAt,
		UpdatedAt: createdAt.Add(time.Hour),
	}

	dto := user.ToDTO()

	if dto.ID != user.ID {
		t.Errorf("ToDTO ID = %d; want %d", dto.ID, user.ID)
	}
	if dto.Username != user.Username {
		t.Errorf("ToDTO Username = %s; want %s", dto.Username, user.Username)
	}
	if dto.Email != user.Email {
		t.Errorf("ToDTO Email = %s; want %s", dto.Email, user.Email)
	}
	if !dto.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("ToDTO CreatedAt = %v; want %v", dto.CreatedAt, user.CreatedAt)
	}
}

// TestUserTableName tests the TableName method of the User model.
func TestUserTableName(t *testing.T) {
	if got := (model.User{}).TableName(); got != "users" {
		t.Errorf("TableName = %s; want users", got)
	}
}

// TestSeedUser tests the fixture naming.
func TestSeedUser(t *testing.T) {
	u := model.SeedUser(7)
	if u.ID != 7 {
		t.Errorf("SeedUser ID = %d; want 7", u.ID)
	}
	if u.Username != "user007" {
		t.Errorf("SeedUser Username = %s; want user007", u.Username)
	}
	if u.Email != "user007@example.com" {
		t.Errorf("SeedUser Email = %s; want user007@example.com", u.Email)
	}
}
