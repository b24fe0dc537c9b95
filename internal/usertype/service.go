package usertype

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Type string
}

type UpdateRequest struct {
	Type *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*UserType, error)
	GetByID(ctx context.Context, id string) (*UserType, error)
	List(ctx context.Context) ([]*UserType, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*UserType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*UserType, error) {
	name := strings.ToLower(strings.TrimSpace(req.Type))
	if name == "" {
		return nil, ErrTypeRequired
	}

	ut := &UserType{Type: name}
	if err := s.repo.Create(ctx, ut); err != nil {
		return nil, err
	}
	return ut, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*UserType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*UserType, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*UserType, error) {
	ut, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		name := strings.ToLower(strings.TrimSpace(*req.Type))
		if name == "" {
			return nil, ErrTypeRequired
		}
		ut.Type = name
	}

	if err := s.repo.Update(ctx, ut); err != nil {
		return nil, err
	}
	return ut, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
