package talent

import (
	"context"
	"strings"
)

type CreateRequest struct {
	UserID string
	Skill  string
}

type UpdateRequest struct {
	Skill    *string
	IsActive *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Talent, error)
	GetByID(ctx context.Context, id string) (*Talent, error)
	List(ctx context.Context) ([]*Talent, error)
	Search(ctx context.Context, query string) ([]*Talent, error)

	// Update mutates a talent profile. A non-empty requesterID restricts the
	// update to the profile's owner; admins pass an empty requesterID.
	Update(ctx context.Context, id, requesterID string, req UpdateRequest) (*Talent, error)
	Delete(ctx context.Context, id string) error
	SetAvatar(ctx context.Context, id, fileID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Talent, error) {
	if req.UserID == "" {
		return nil, ErrUserRequired
	}
	if strings.TrimSpace(req.Skill) == "" {
		return nil, ErrSkillRequired
	}

	t := &Talent{
		UserID:   req.UserID,
		Skill:    strings.TrimSpace(req.Skill),
		IsActive: true,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, t.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Talent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Talent, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*Talent, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query))
}

func (s *service) Update(ctx context.Context, id, requesterID string, req UpdateRequest) (*Talent, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if requesterID != "" && t.UserID != requesterID {
		return nil, ErrNotOwner
	}

	if req.Skill != nil {
		if strings.TrimSpace(*req.Skill) == "" {
			return nil, ErrSkillRequired
		}
		t.Skill = strings.TrimSpace(*req.Skill)
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetAvatar(ctx context.Context, id, fileID string) error {
	return s.repo.SetAvatar(ctx, id, fileID)
}
