package gormrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	m := newUserModel(user)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, cond string, arg any) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, *m.toDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          string(user.Role),
		"reset_token":   user.ResetToken,
		"updated_at":    user.UpdatedAt,
	})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes the user with their registrations, the events and blogs
// they created, and everything attached to those. Payments the user
// confirmed as admin keep their status but lose the confirmer reference.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			what  string
			query string
		}{
			{"registrations", `DELETE FROM event_registrations
				WHERE user_id = @id OR event_id IN (SELECT id FROM events WHERE created_by = @id)`},
			{"confirmer references", `UPDATE event_registrations SET confirmed_by = NULL WHERE confirmed_by = @id`},
			{"event categories", `DELETE FROM event_category_relations
				WHERE event_id IN (SELECT id FROM events WHERE created_by = @id)`},
			{"events", `DELETE FROM events WHERE created_by = @id`},
			{"blog categories", `DELETE FROM blog_category_relations
				WHERE blog_id IN (SELECT id FROM blogs WHERE created_by = @id)`},
			{"blogs", `DELETE FROM blogs WHERE created_by = @id`},
		}

		for _, step := range steps {
			if err := tx.Exec(step.query, sql.Named("id", id)).Error; err != nil {
				return fmt.Errorf("failed to delete user %s: %w", step.what, err)
			}
		}

		res := tx.Where("id = ?", id).Delete(&userModel{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
