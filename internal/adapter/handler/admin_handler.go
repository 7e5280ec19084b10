package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.Users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.svc.Users.GetWithRegistrations(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailResponse(user))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.Users.Update(c.Request.Context(), id, domain.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

func (h *Handler) ChangeRole(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.Users.ChangeRole(c.Request.Context(), id, domain.Role(req.Role))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) SalesReport(c *gin.Context) {
	var q dto.SalesReportQuery
	if !h.bindQuery(c, &q) {
		return
	}

	from, err := parseTime("start_date", q.StartDate, false)
	if err != nil {
		h.handleError(c, err)
		return
	}

	to, err := parseTime("end_date", q.EndDate, true)
	if err != nil {
		h.handleError(c, err)
		return
	}

	report, err := h.svc.Reports.Sales(c.Request.Context(), domain.SalesFilter{From: from, To: to})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
}

func (h *Handler) EventReport(c *gin.Context) {
	lines, err := h.svc.Reports.Events(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventReportResponses(lines))
}
