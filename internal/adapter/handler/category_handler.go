package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

// CategoryHandler serves one category kind. Event and blog categories share
// the same routes under different prefixes.
type CategoryHandler struct {
	*Handler
	kind domain.CategoryKind
}

func (h *Handler) Categories(kind domain.CategoryKind) *CategoryHandler {
	return &CategoryHandler{Handler: h, kind: kind}
}

func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.svc.Categories.List(c.Request.Context(), h.kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponses(cats))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	cat, err := h.svc.Categories.Get(c.Request.Context(), h.kind, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cat, err := h.svc.Categories.Create(c.Request.Context(), h.kind, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	cat, err := h.svc.Categories.Rename(c.Request.Context(), h.kind, id, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Categories.Delete(c.Request.Context(), h.kind, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "category deleted"})
}
