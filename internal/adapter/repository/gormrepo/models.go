package gormrepo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"gorm.io/gorm"
)

type userModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null"`
	ResetToken   *string   `gorm:"column:reset_token"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string {
	return "users"
}

func newUserModel(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		ResetToken:   u.ResetToken,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		ResetToken:   m.ResetToken,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type categoryModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Kind      string    `gorm:"column:kind;not null"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string {
	return "categories"
}

func newCategoryModel(c *domain.Category) categoryModel {
	return categoryModel{ID: c.ID, Kind: string(c.Kind), Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func (m categoryModel) toDomain() domain.Category {
	return domain.Category{
		ID:        m.ID,
		Kind:      domain.CategoryKind(m.Kind),
		Name:      m.Name,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type blogModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Content   string    `gorm:"column:content;not null"`
	ImageURL  *string   `gorm:"column:image_url"`
	Status    string    `gorm:"column:status;not null"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (blogModel) TableName() string {
	return "blogs"
}

func newBlogModel(b *domain.Blog) blogModel {
	return blogModel{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		ImageURL:  b.ImageURL,
		Status:    string(b.Status),
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m blogModel) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:         m.ID,
		Title:      m.Title,
		Content:    m.Content,
		ImageURL:   m.ImageURL,
		Status:     domain.BlogStatus(m.Status),
		CreatedBy:  m.CreatedBy,
		Categories: []domain.Category{},
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
}

type blogCategoryRelation struct {
	BlogID     uuid.UUID `gorm:"column:blog_id;type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey"`
}

func (blogCategoryRelation) TableName() string {
	return "blog_category_relations"
}

// isDuplicate matches unique violations whether or not gorm translated them.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
