package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/campus_event/internal/adapter/handler/dto"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/core/services"
)

const proofField = "proof"

// maxFormOverhead leaves room for the multipart framing and the notes field.
const maxFormOverhead = 64 << 10

func (h *Handler) SubmitPaymentProof(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	regID, ok := h.uuidParam(c, "registrationId")
	if !ok {
		return
	}

	proof, err := readProof(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	in := services.SubmitProofInput{
		RegistrationID: regID,
		UserID:         actor.UserID,
		Proof:          proof,
	}
	if notes, ok := c.GetPostForm("notes"); ok {
		in.Notes = &notes
	}

	reg, err := h.svc.Payments.SubmitProof(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// readProof loads the multipart proof into memory. A missing file yields a
// nil upload so the service reports it. The body is capped before parsing so
// an oversized form never reaches disk.
func readProof(c *gin.Context) (*domain.Upload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, domain.MaxProofSize+maxFormOverhead)

	fh, err := c.FormFile(proofField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrValidation, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: invalid multipart form", domain.ErrValidation)
	}

	if fh.Size > domain.MaxProofSize {
		return nil, fmt.Errorf("%w: payment proof exceeds %d bytes", domain.ErrValidation, domain.MaxProofSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, domain.MaxProofSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	return &domain.Upload{Filename: fh.Filename, Data: data}, nil
}

func (h *Handler) MyPayments(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	details, err := h.svc.Payments.ListMine(c.Request.Context(), actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDetailResponses(details))
}

func (h *Handler) PendingPayments(c *gin.Context) {
	details, err := h.svc.Payments.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDetailResponses(details))
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	regID, ok := h.uuidParam(c, "registrationId")
	if !ok {
		return
	}

	reg, err := h.svc.Payments.ConfirmPayment(c.Request.Context(), regID, actor.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}
