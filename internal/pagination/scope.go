// internal/pagination/scope.go
package pagination

import "gorm.io/gorm"

// Scope returns a GORM scope applying the page's LIMIT and OFFSET.
//
//	db.Scopes(users.Scope(params)).Find(&out)
func (r *Resource) Scope(p *Params) func(*gorm.DB) *gorm.DB {
	w := r.ScopeFilter(p)
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(w.Limit).Offset(w.Offset)
	}
}

// Query starts a paginated query on the resource's model.
func (r *Resource) Query(db *gorm.DB, p *Params) *gorm.DB {
	return db.Model(r.model).Scopes(r.Scope(p))
}
