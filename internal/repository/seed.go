package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fuzumoe/gopaginate/internal/model"
)

const seedBatchSize = 100

// Seed makes sure users with ids 0..n-1 exist. Existing rows are left alone.
func Seed(db *gorm.DB, n int) error {
	if n <= 0 {
		return nil
	}
	users := make([]model.User, n)
	for i := range users {
		users[i] = model.SeedUser(uint(i))
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(users, seedBatchSize).Error
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	return nil
}
