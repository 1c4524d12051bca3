package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hireflow/screening/internal/extract"
	"github.com/hireflow/screening/internal/middleware"
	"github.com/hireflow/screening/internal/response"
	"github.com/hireflow/screening/internal/usecase"
	"github.com/hireflow/screening/internal/util"
)

// ScreeningService is the slice of the usecase the HTTP layer consumes.
type ScreeningService interface {
	ScreenCandidate(ctx context.Context, email string) (*response.ScreeningResult, error)
	SummarizeJD(ctx context.Context, fileURL string) (string, error)
	ParseResume(ctx context.Context, fileURL string) (string, error)
}

type ScreeningHandler struct {
	uc ScreeningService
}

func NewScreeningHandler(uc ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{uc: uc}
}

func (h *ScreeningHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jd_summarize", h.SummarizeJD)
	app.Post("/candidate_screening", middleware.RateLimiter(1, 4*time.Second), h.ScreenCandidate)
	app.Post("/parse_cv", h.ParseCV)
}

type screeningRequest struct {
	Email string `json:"email"`
}

func (h *ScreeningHandler) ScreenCandidate(c *fiber.Ctx) error {
	var req screeningRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.Email == "" {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Email is required")
	}

	result, err := h.uc.ScreenCandidate(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrCandidateNotFound) {
			return util.ErrorJSON(c, fiber.StatusNotFound, "Candidate not found")
		}
		return h.upstreamError(c, err)
	}

	return c.JSON(result)
}

type jdSummarizeRequest struct {
	JDFile string `json:"jd_file"`
}

func (h *ScreeningHandler) SummarizeJD(c *fiber.Ctx) error {
	var req jdSummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.JDFile == "" {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Please provide a document file.")
	}

	summary, err := h.uc.SummarizeJD(c.UserContext(), req.JDFile)
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return util.ErrorJSON(c, fiber.StatusNotFound, "Job description not found")
		}
		return h.upstreamError(c, err)
	}

	return c.JSON(response.Summary{Summary: summary})
}

type parseCVRequest struct {
	CVFile string `json:"cv_file"`
}

func (h *ScreeningHandler) ParseCV(c *fiber.Ctx) error {
	var req parseCVRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if req.CVFile == "" {
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Please provide a document file.")
	}

	parsed, err := h.uc.ParseResume(c.UserContext(), req.CVFile)
	if err != nil {
		return h.upstreamError(c, err)
	}

	// The parsing agent output is already a JSON document.
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(parsed)
}

// upstreamError maps document and LLM failures onto HTTP statuses. The
// candidate row is untouched in every one of these cases.
func (h *ScreeningHandler) upstreamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return util.ErrorJSON(c, fiber.StatusBadRequest, "Unsupported file format", err)
	case errors.Is(err, extract.ErrDownload):
		return util.ErrorJSON(c, fiber.StatusBadGateway, "Failed to download file", err)
	default:
		return util.ErrorJSON(c, fiber.StatusInternalServerError, "Screening failed", err)
	}
}
