package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

func (h *Handler) ListEvents(c *gin.Context) {
	var q dto.EventListQuery
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

	events, err := h.svc.Events.List(c.Request.Context(), domain.EventFilter{
		Search:   q.Search,
		Category: q.Category,
		From:     from,
		To:       to,
		Limit:    q.Limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.svc.Events.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailResponse(detail))
}

func (h *Handler) CreateEvent(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.bindJSON(c, &req) {
		return
	}

	in, err := toCreateEventInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	in.CreatedBy = actor.UserID

	event, err := h.svc.Events.Create(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func toCreateEventInput(req dto.CreateEventRequest) (domain.CreateEventInput, error) {
	startsAt, err := requireTime("starts_at", req.StartsAt)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	price, err := parseMoney(req.Price)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	ids, err := parseUUIDs(req.Categories)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	return domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    startsAt,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       price,
		ImageURL:    req.ImageURL,
		CategoryIDs: ids,
	}, nil
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !h.bindJSON(c, &req) {
		return
	}

	in, err := toUpdateEventInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.svc.Events.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func toUpdateEventInput(req dto.UpdateEventRequest) (domain.UpdateEventInput, error) {
	in := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,

		ClearCapacity: req.UnlimitedCapacity,
	}

	if req.StartsAt != nil {
		t, err := requireTime("starts_at", *req.StartsAt)
		if err != nil {
			return in, err
		}
		in.StartsAt = &t
	}

	if req.Price != nil {
		p, err := parseMoney(*req.Price)
		if err != nil {
			return in, err
		}
		in.Price = &p
	}

	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		in.Status = &s
	}

	if req.Categories != nil {
		ids, err := parseUUIDs(*req.Categories)
		if err != nil {
			return in, err
		}
		in.CategoryIDs = &ids
	}

	return in, nil
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Events.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "event deleted"})
}

func (h *Handler) RegisterForEvent(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	eventID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	reg, err := h.svc.Registrations.Register(c.Request.Context(), eventID, actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func parseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price must be a number", domain.ErrValidation)
	}
	return d, nil
}
