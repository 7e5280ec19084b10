package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/ports/mocks"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBlogGetPublished_HidesDrafts(t *testing.T) {
	blogs := mocks.NewBlogRepository(t)
	service := services.NewBlogService(blogs, mocks.NewCategoryRepository(t), zerolog.Nop())

	ctx := context.Background()
	draft := &domain.Blog{ID: uuid.New(), Status: domain.BlogDraft}

	blogs.On("GetByID", ctx, draft.ID).Return(draft, nil)

	_, err := service.GetPublished(ctx, draft.ID)

	assert.ErrorIs(t, err, domain.ErrBlogNotFound)
}

func TestBlogCreate_ResolvesBlogCategories(t *testing.T) {
	blogs := mocks.NewBlogRepository(t)
	categories := mocks.NewCategoryRepository(t)
	service := services.NewBlogService(blogs, categories, zerolog.Nop())

	ctx := context.Background()
	catID := uuid.New()
	title, content := "Tips Lulus Cepat", "Isi tulisan"
	ids := []uuid.UUID{catID}

	categories.On("FindByIDs", ctx, domain.CategoryBlog, ids).Return([]domain.Category{{ID: catID, Kind: domain.CategoryBlog}}, nil)
	blogs.On("Create", ctx, mock.MatchedBy(func(b *domain.Blog) bool {
		return b.Status == domain.BlogDraft && len(b.Categories) == 1
	})).Return(nil)

	blog, err := service.Create(ctx, uuid.New(), domain.BlogInput{Title: &title, Content: &content, CategoryIDs: &ids})

	require.NoError(t, err)
	assert.Equal(t, title, blog.Title)
}

func TestBlogCreate_Fail_MissingContent(t *testing.T) {
	service := services.NewBlogService(mocks.NewBlogRepository(t), mocks.NewCategoryRepository(t), zerolog.Nop())
	title := "Only a title"

	_, err := service.Create(context.Background(), uuid.New(), domain.BlogInput{Title: &title})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryCreate(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	service := services.NewCategoryService(repo)

	ctx := context.Background()
	repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Name == "Seminar" && c.Kind == domain.CategoryEvent
	})).Return(nil)

	cat, err := service.Create(ctx, domain.CategoryEvent, " Seminar ")

	require.NoError(t, err)
	assert.Equal(t, "Seminar", cat.Name)

	_, err = service.Create(ctx, domain.CategoryEvent, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryRename_NotFound(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	service := services.NewCategoryService(repo)

	ctx := context.Background()
	id := uuid.New()
	repo.On("GetByID", ctx, domain.CategoryBlog, id).Return(nil, domain.ErrCategoryNotFound)

	_, err := service.Rename(ctx, domain.CategoryBlog, id, "News")

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
