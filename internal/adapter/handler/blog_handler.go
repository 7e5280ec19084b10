package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

func (h *Handler) ListBlogs(c *gin.Context) {
	h.listBlogs(c, nil)
}

func (h *Handler) ListBlogsByCategory(c *gin.Context) {
	id, ok := h.uuidParam(c, "categoryId")
	if !ok {
		return
	}
	h.listBlogs(c, &id)
}

func (h *Handler) listBlogs(c *gin.Context, categoryID *uuid.UUID) {
	blogs, err := h.svc.Blogs.ListPublished(c.Request.Context(), categoryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponses(blogs))
}

func (h *Handler) GetBlog(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	blog, err := h.svc.Blogs.GetPublished(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponse(blog))
}

func (h *Handler) CreateBlog(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	in, ok := h.bindBlog(c)
	if !ok {
		return
	}

	blog, err := h.svc.Blogs.Create(c.Request.Context(), actor.UserID, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogResponse(blog))
}

func (h *Handler) UpdateBlog(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	in, ok := h.bindBlog(c)
	if !ok {
		return
	}

	blog, err := h.svc.Blogs.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponse(blog))
}

func (h *Handler) DeleteBlog(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Blogs.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "blog deleted"})
}

func (h *Handler) bindBlog(c *gin.Context) (domain.BlogInput, bool) {
	var req dto.BlogRequest
	if !h.bindJSON(c, &req) {
		return domain.BlogInput{}, false
	}

	in := domain.BlogInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if req.Status != nil {
		s := domain.BlogStatus(*req.Status)
		in.Status = &s
	}

	if req.Categories != nil {
		ids, err := parseUUIDs(*req.Categories)
		if err != nil {
			h.handleError(c, err)
			return in, false
		}
		in.CategoryIDs = &ids
	}

	return in, true
}
