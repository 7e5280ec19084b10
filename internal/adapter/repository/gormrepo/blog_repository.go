package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := newBlogModel(blog)
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("failed to create blog: %w", err)
		}
		return linkBlogCategories(tx, blog.ID, blog.Categories)
	})
}

func linkBlogCategories(tx *gorm.DB, blogID uuid.UUID, cats []domain.Category) error {
	if len(cats) == 0 {
		return nil
	}

	rels := make([]blogCategoryRelation, 0, len(cats))
	for _, c := range cats {
		rels = append(rels, blogCategoryRelation{BlogID: blogID, CategoryID: c.ID})
	}

	if err := tx.Create(&rels).Error; err != nil {
		return fmt.Errorf("failed to link blog categories: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	var m blogModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}

	blogs := []*domain.Blog{m.toDomain()}
	if err := r.attachCategories(ctx, blogs); err != nil {
		return nil, err
	}
	return blogs[0], nil
}

func (r *BlogRepository) List(ctx context.Context, filter domain.BlogFilter) ([]domain.Blog, error) {
	q := r.db.WithContext(ctx).Model(&blogModel{})

	if filter.PublishedOnly {
		q = q.Where("status = ?", string(domain.BlogPublished))
	}

	if filter.CategoryID != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM blog_category_relations bcr
			WHERE bcr.blog_id = blogs.id AND bcr.category_id = ?)`, *filter.CategoryID)
	}

	var models []blogModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	ptrs := make([]*domain.Blog, 0, len(models))
	for _, m := range models {
		ptrs = append(ptrs, m.toDomain())
	}

	if err := r.attachCategories(ctx, ptrs); err != nil {
		return nil, err
	}

	blogs := make([]domain.Blog, 0, len(ptrs))
	for _, b := range ptrs {
		blogs = append(blogs, *b)
	}
	return blogs, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog, replaceCategories bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&blogModel{}).Where("id = ?", blog.ID).Updates(map[string]any{
			"title":      blog.Title,
			"content":    blog.Content,
			"image_url":  blog.ImageURL,
			"status":     string(blog.Status),
			"updated_at": blog.UpdatedAt,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update blog: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return domain.ErrBlogNotFound
		}

		if !replaceCategories {
			return nil
		}

		if err := tx.Where("blog_id = ?", blog.ID).Delete(&blogCategoryRelation{}).Error; err != nil {
			return fmt.Errorf("failed to clear blog categories: %w", err)
		}
		return linkBlogCategories(tx, blog.ID, blog.Categories)
	})
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&blogCategoryRelation{}).Error; err != nil {
			return fmt.Errorf("failed to clear blog categories: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&blogModel{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete blog: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return domain.ErrBlogNotFound
		}
		return nil
	})
}

func (r *BlogRepository) attachCategories(ctx context.Context, blogs []*domain.Blog) error {
	if len(blogs) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Blog, len(blogs))
	ids := make([]uuid.UUID, 0, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	var rows []struct {
		BlogID    uuid.UUID
		ID        uuid.UUID
		Kind      string
		Name      string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	err := r.db.WithContext(ctx).
		Table("blog_category_relations bcr").
		Select("bcr.blog_id, c.id, c.kind, c.name, c.created_at, c.updated_at").
		Joins("JOIN categories c ON c.id = bcr.category_id").
		Where("bcr.blog_id IN ?", ids).
		Order("c.name").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to load blog categories: %w", err)
	}

	for _, row := range rows {
		if b, ok := byID[row.BlogID]; ok {
			c := categoryModel{ID: row.ID, Kind: row.Kind, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}
			b.Categories = append(b.Categories, c.toDomain())
		}
	}
	return nil
}
