package handler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const (
	ctxActor     = "actor"
	ctxRequestID = "request_id"
	ctxError     = "error"

	headerRequestID = "X-Request-ID"
)

type TokenParser interface {
	ParseAccess(token string) (domain.Actor, error)
}

func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "http").Logger()

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()

		status := c.Writer.Status()

		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}

		if msg := c.GetString(ctxError); msg != "" {
			ev = ev.Str("error", msg)
		}

		ev.Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString(ctxRequestID)).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")

				c.Set(ctxError, fmt.Sprint(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: "internal server error",
					Code:  string(domain.KindInternal),
				})
			}
		}()

		c.Next()
	}
}

// Authenticate requires a valid bearer access token and stores the actor.
func Authenticate(tokens TokenParser, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			writeError(c, log, fmt.Errorf("%w: missing bearer token", domain.ErrInvalidToken))
			return
		}

		actor, err := tokens.ParseAccess(strings.TrimSpace(token))
		if err != nil {
			writeError(c, log, err)
			return
		}

		c.Set(ctxActor, actor)
		c.Next()
	}
}

func RequireAdmin(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := actorFrom(c)
		if !ok || actor.Role != domain.RoleAdmin {
			writeError(c, log, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func actorFrom(c *gin.Context) (domain.Actor, bool) {
	v, ok := c.Get(ctxActor)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

// actor returns the authenticated caller. Routes using it sit behind
// Authenticate, so a miss is a wiring bug.
func (h *Handler) actor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := actorFrom(c)
	if !ok {
		h.handleError(c, errNoActor)
	}
	return actor, ok
}
