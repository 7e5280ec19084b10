package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

type CategoryService struct {
	repo ports.CategoryRepository
	now  func() time.Time
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo, now: time.Now}
}

func (s *CategoryService) List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	cats, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	if cats == nil {
		cats = []domain.Category{}
	}

	return cats, nil
}

func (s *CategoryService) Get(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error) {
	return s.repo.GetByID(ctx, kind, id)
}

func (s *CategoryService) Create(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}

	if !kind.Valid() {
		return nil, invalid("unknown category kind %q", kind)
	}

	now := s.now().UTC()
	cat := &domain.Category{ID: uuid.New(), Kind: kind, Name: name, CreatedAt: now, UpdatedAt: now}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *CategoryService) Rename(ctx context.Context, kind domain.CategoryKind, id uuid.UUID, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}

	cat, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	cat.Name = name
	cat.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error {
	return s.repo.Delete(ctx, kind, id)
}
