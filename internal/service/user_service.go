package service

import (
	"github.com/fuzumoe/gopaginate/internal/model"
	"github.com/fuzumoe/gopaginate/internal/pagination"
	"github.com/fuzumoe/gopaginate/internal/repository"
)

// UserPage is one page of users plus the metadata needed to walk the list.
type UserPage struct {
	Resource string           `json:"resource"`
	Items    []*model.UserDTO `json:"items"`
	Page     pagination.Page  `json:"page"`
	Next     *pagination.Page `json:"next"`
	HasNext  bool             `json:"has_next"`
	Total    int64            `json:"total"`
}

// UserService defines business operations around users.
type UserService interface {
	Get(id uint) (*model.UserDTO, error)
	List(p *pagination.Params) (*UserPage, error)
	CurrentPage(p *pagination.Params) pagination.Page
	NextPage(p *pagination.Params, total *int64) (pagination.Page, bool)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Get(id uint) (*model.UserDTO, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return u.ToDTO(), nil
}

func (s *userService) List(p *pagination.Params) (*UserPage, error) {
	users, total, err := s.repo.ListPage(p)
	if err != nil {
		return nil, err
	}
	res := s.repo.Pagination()

	dtos := make([]*model.UserDTO, len(users))
	for i := range users {
		dtos[i] = users[i].ToDTO()
	}
	out := &UserPage{
		Resource: res.Name(),
		Items:    dtos,
		Page:     res.CurrentPage(p),
		Total:    total,
	}
	if next, ok := res.NextPageWithin(p, total); ok {
		out.Next = &next
		out.HasNext = true
	}
	return out, nil
}

func (s *userService) CurrentPage(p *pagination.Params) pagination.Page {
	return s.repo.Pagination().CurrentPage(p)
}

// NextPage returns the page after p. With a nil total the next page is
// always returned; otherwise only when total reaches past p.
func (s *userService) NextPage(p *pagination.Params, total *int64) (pagination.Page, bool) {
	res := s.repo.Pagination()
	if total == nil {
		return res.NextPage(p), true
	}
	return res.NextPageWithin(p, *total)
}
