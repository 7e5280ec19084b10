package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m := newCategoryModel(category)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) (*domain.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).Where("kind = ? AND id = ?", string(kind), id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	c := m.toDomain()
	return &c, nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, kind domain.CategoryKind, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	var models []categoryModel
	err := r.db.WithContext(ctx).Where("kind = ? AND id IN ?", string(kind), ids).Order("name").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	return toCategories(models), nil
}

func (r *CategoryRepository) List(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return toCategories(models), nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	res := r.db.WithContext(ctx).Model(&categoryModel{}).
		Where("kind = ? AND id = ?", string(category.Kind), category.ID).
		Updates(map[string]any{"name": category.Name, "updated_at": category.UpdatedAt})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("failed to update category: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete unlinks the category from every event or blog before removing it.
func (r *CategoryRepository) Delete(ctx context.Context, kind domain.CategoryKind, id uuid.UUID) error {
	relations := "event_category_relations"
	if kind == domain.CategoryBlog {
		relations = "blog_category_relations"
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+relations+" WHERE category_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to unlink category: %w", err)
		}

		res := tx.Where("kind = ? AND id = ?", string(kind), id).Delete(&categoryModel{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete category: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
}

func toCategories(models []categoryModel) []domain.Category {
	cats := make([]domain.Category, 0, len(models))
	for _, m := range models {
		cats = append(cats, m.toDomain())
	}
	return cats
}
