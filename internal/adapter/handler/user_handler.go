package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

func (h *Handler) Profile(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	user, err := h.svc.Users.Get(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.Users.Update(c.Request.Context(), actor.UserID, domain.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.svc.Users.ChangePassword(c.Request.Context(), actor.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password changed"})
}

func (h *Handler) MyEvents(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	details, err := h.svc.Registrations.ListMine(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDetailResponses(details))
}
