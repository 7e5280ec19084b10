package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports"
)

type BlogService struct {
	blogs      ports.BlogRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
	now        func() time.Time
}

func NewBlogService(blogs ports.BlogRepository, categories ports.CategoryRepository, log zerolog.Logger) *BlogService {
	return &BlogService{
		blogs:      blogs,
		categories: categories,
		log:        log.With().Str("component", "blog_service").Logger(),
		now:        time.Now,
	}
}

// ListPublished lists published blogs, optionally limited to one category.
func (s *BlogService) ListPublished(ctx context.Context, categoryID *uuid.UUID) ([]domain.Blog, error) {
	blogs, err := s.blogs.List(ctx, domain.BlogFilter{CategoryID: categoryID, PublishedOnly: true})
	if err != nil {
		return nil, err
	}

	if blogs == nil {
		blogs = []domain.Blog{}
	}

	return blogs, nil
}

func (s *BlogService) GetPublished(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if blog.Status != domain.BlogPublished {
		return nil, domain.ErrBlogNotFound
	}

	return blog, nil
}

func (s *BlogService) Create(ctx context.Context, authorID uuid.UUID, in domain.BlogInput) (*domain.Blog, error) {
	now := s.now().UTC()
	blog := &domain.Blog{
		ID:         uuid.New(),
		Status:     domain.BlogDraft,
		CreatedBy:  authorID,
		Categories: []domain.Category{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.apply(ctx, blog, in); err != nil {
		return nil, err
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, in domain.BlogInput) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.apply(ctx, blog, in); err != nil {
		return nil, err
	}
	blog.UpdatedAt = s.now().UTC()

	if err := s.blogs.Update(ctx, blog, in.CategoryIDs != nil); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.blogs.Delete(ctx, id)
}

func (s *BlogService) apply(ctx context.Context, blog *domain.Blog, in domain.BlogInput) error {
	if in.Title != nil {
		blog.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.ImageURL != nil {
		u := *in.ImageURL
		blog.ImageURL = &u
	}
	if in.Status != nil {
		blog.Status = *in.Status
	}

	switch {
	case blog.Title == "":
		return invalid("title is required")
	case strings.TrimSpace(blog.Content) == "":
		return invalid("content is required")
	case !blog.Status.Valid():
		return invalid("unknown blog status %q", blog.Status)
	}

	if in.CategoryIDs != nil {
		ids := uniqueIDs(*in.CategoryIDs)
		cats := []domain.Category{}
		if len(ids) > 0 {
			found, err := s.categories.FindByIDs(ctx, domain.CategoryBlog, ids)
			if err != nil {
				return err
			}
			if len(found) != len(ids) {
				return invalid("unknown blog category")
			}
			cats = found
		}
		blog.Categories = cats
	}

	return nil
}
