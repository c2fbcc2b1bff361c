package repository

import (
	"gorm.io/gorm"

	"github.com/fuzumoe/gopaginate/internal/model"
	"github.com/fuzumoe/gopaginate/internal/pagination"
)

// UserRepository defines all DB operations around users.
type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	ListPage(p *pagination.Params) ([]model.User, int64, error)
	Pagination() *pagination.Resource
}

// userRepo is the GORM implementation of UserRepository.
type userRepo struct {
	db    *gorm.DB
	users *pagination.Resource
}

// NewUserRepo returns a UserRepository backed by GORM. The users collection
// is attached to the process-wide paginator with opts as overrides.
func NewUserRepo(db *gorm.DB, opts ...pagination.Option) UserRepository {
	return &userRepo{
		db:    db,
		users: pagination.Attach(&model.User{}, opts...),
	}
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListPage returns one page of users ordered by id together with the total
// number of users.
func (r *userRepo) ListPage(p *pagination.Params) ([]model.User, int64, error) {
	var users []model.User
	total, err := findPage(r.db, r.users, p, "id", &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepo) Pagination() *pagination.Resource {
	return r.users
}
