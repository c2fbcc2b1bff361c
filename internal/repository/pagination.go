// internal/repository/pagination.go
package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/fuzumoe/gopaginate/internal/pagination"
)

// findPage counts every row of the resource's model matched by db and loads
// the requested page of them into dest, ordered by orderBy.
func findPage(db *gorm.DB, res *pagination.Resource, p *pagination.Params, orderBy string, dest any) (int64, error) {
	var total int64
	if err := db.Model(res.Model()).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", res.Name(), err)
	}
	if err := res.Query(db, p).Order(orderBy).Find(dest).Error; err != nil {
		return 0, fmt.Errorf("list %s: %w", res.Name(), err)
	}
	return total, nil
}
