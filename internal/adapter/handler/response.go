package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/pkg/validator"
)

var kindStatus = map[domain.Kind]int{
	domain.KindNotFound:              http.StatusNotFound,
	domain.KindDuplicateRegistration: http.StatusConflict,
	domain.KindCapacityExceeded:      http.StatusConflict,
	domain.KindAlreadyCompleted:      http.StatusConflict,
	domain.KindValidation:            http.StatusBadRequest,
	domain.KindDependencyFailure:     http.StatusBadGateway,
	domain.KindUnauthorized:          http.StatusUnauthorized,
	domain.KindForbidden:             http.StatusForbidden,
	domain.KindConflict:              http.StatusConflict,
}

func (h *Handler) handleError(c *gin.Context, err error) {
	writeError(c, h.log, err)
}

// writeError maps err to its status and stable code. Internal and dependency
// failures are logged and their details never shown to the client.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	kind := domain.KindOf(err)
	c.Set(ctxError, err.Error())

	status, ok := kindStatus[kind]
	if !ok {
		log.Error().Err(err).Str("kind", string(kind)).Str("path", c.FullPath()).Msg("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "internal server error",
			Code:  string(domain.KindInternal),
		})
		return
	}

	msg := err.Error()
	if kind == domain.KindDependencyFailure {
		log.Error().Err(err).Str("kind", string(kind)).Str("path", c.FullPath()).Msg("dependency failed")
		msg = "upstream service unavailable"
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg, Code: string(kind)})
}

func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid json body", domain.ErrValidation))
		return false
	}

	if err := validator.Validate(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return false
	}

	return true
}

func (h *Handler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid query", domain.ErrValidation))
		return false
	}

	if err := validator.Validate(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return false
	}

	return true
}

func (h *Handler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid %s", domain.ErrValidation, name))
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id %q", domain.ErrValidation, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseTime accepts RFC 3339 timestamps and plain dates. A plain date used
// as an upper bound covers the whole day.
func parseTime(field, s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be RFC 3339 or YYYY-MM-DD", domain.ErrValidation, field)
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func requireTime(field, s string) (time.Time, error) {
	t, err := parseTime(field, s, false)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return *t, nil
}

var errNoActor = errors.New("missing authenticated actor")
