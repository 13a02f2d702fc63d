package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/grandeurhq/form-service/internal/queue"
	"github.com/grandeurhq/form-service/internal/repository"
	"github.com/grandeurhq/form-service/internal/validation"
)

// FormHandler bundles dependencies for the submission endpoint.
type FormHandler struct {
	Submissions *repository.SubmissionRepo
	Events      *queue.Publisher
}

func NewFormHandler(submissions *repository.SubmissionRepo, events *queue.Publisher) *FormHandler {
	return &FormHandler{Submissions: submissions, Events: events}
}

// ----- DTOs -----

type submitReq struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Number string `json:"number" validate:"required,len=10,number"`
}

type submitResp struct {
	Message  string `json:"message"`
	RecordID uint64 `json:"record_id"`
}

// Submit: validate a submission and persist it as one row.  Validation
// failures short-circuit before any storage access; the returned error is
// rendered by ErrorHandler as a 422 with field detail.
func (h *FormHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return validation.Errors{{Field: "body", Message: "must be a valid JSON object"}}
	}
	// Strip surrounding whitespace before validating, so a blank name is
	// rejected and " ada@example.com " is accepted.
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Number = strings.TrimSpace(req.Number)
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sub, err := h.Submissions.Create(ctx, req.Name, req.Email, req.Number)
	if err != nil {
		log.WithField("err", err).Error("database error while storing submission")
		return c.JSON(http.StatusInternalServerError, errorResp{Detail: msgDatabaseError})
	}

	// The row is already committed; eventing is best effort.
	_ = h.Events.PublishFormSubmitted(ctx, queue.NewFormSubmittedEvent(sub))

	log.WithField("record_id", sub.ID).Info("form submitted successfully")
	return c.JSON(http.StatusCreated, submitResp{
		Message:  "Form submitted successfully!",
		RecordID: sub.ID,
	})
}
