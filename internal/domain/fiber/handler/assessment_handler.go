package handler

import (
	"github.com/fadilmartias/assessment-board/internal/dto"
	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/fadilmartias/assessment-board/internal/usecase"
	"github.com/fadilmartias/assessment-board/internal/util"
	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssessmentHandler struct {
	uc    *usecase.AssessmentUsecase
	log   logrus.FieldLogger
	debug bool
}

// NewAssessmentHandler wires the dataset routes. With debug set, error
// responses carry the underlying error and a stack trace.
func NewAssessmentHandler(uc *usecase.AssessmentUsecase, log logrus.FieldLogger, debug bool) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, log: log, debug: debug}
}

func (h *AssessmentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health)
	router.Get("/assessments", h.Assessments)
	router.Get("/responses", h.Responses)
	router.Post("/filter-assessments", h.FilterAssessments)
	router.Post("/filter-responses", h.FilterResponses)
	router.Post("/pending", h.Pending)
	router.Post("/nikeeta-lookup", h.Lookup)
	router.Get("/filter-options/assessments", h.AssessmentOptions)
	router.Get("/filter-options/responses", h.ResponseOptions)
}

func (h *AssessmentHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AssessmentHandler) Assessments(c *fiber.Ctx) error {
	rows, err := h.uc.Assessments(c.UserContext())
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(rows)
}

func (h *AssessmentHandler) Responses(c *fiber.Ctx) error {
	rows, err := h.uc.Responses(c.UserContext())
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(rows)
}

func (h *AssessmentHandler) FilterAssessments(c *fiber.Ctx) error {
	spec, err := dto.ParseFilterRequest(c.Body(), filter.AssessmentSchema)
	if err != nil {
		return h.invalidBody(c, err)
	}
	rows, err := h.uc.FilterAssessments(c.UserContext(), spec)
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(rows)
}

func (h *AssessmentHandler) FilterResponses(c *fiber.Ctx) error {
	spec, err := dto.ParseFilterRequest(c.Body(), filter.ResponseSchema)
	if err != nil {
		return h.invalidBody(c, err)
	}
	rows, err := h.uc.FilterResponses(c.UserContext(), spec)
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(rows)
}

func (h *AssessmentHandler) Pending(c *fiber.Ctx) error {
	spec, err := dto.ParseFilterRequest(c.Body(), filter.ResponseSchema)
	if err != nil {
		return h.invalidBody(c, err)
	}
	rows, err := h.uc.Pending(c.UserContext(), spec)
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(rows)
}

func (h *AssessmentHandler) Lookup(c *fiber.Ctx) error {
	req, err := dto.ParseLookupRequest(c.Body())
	if err != nil {
		return h.invalidBody(c, err)
	}
	page, err := h.uc.Lookup(c.UserContext(), req.Query())
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(page)
}

func (h *AssessmentHandler) AssessmentOptions(c *fiber.Ctx) error {
	options, err := h.uc.AssessmentOptions(c.UserContext())
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(options)
}

func (h *AssessmentHandler) ResponseOptions(c *fiber.Ctx) error {
	options, err := h.uc.ResponseOptions(c.UserContext())
	if err != nil {
		return h.sourceFailure(c, err)
	}
	return c.JSON(options)
}

func (h *AssessmentHandler) sourceFailure(c *fiber.Ctx, err error) error {
	h.log.WithError(err).WithField("path", c.Path()).Error("row source fetch failed")
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusInternalServerError,
		Message: "Database connection failed",
		Debug:   h.debug,
	}, err)
}

func (h *AssessmentHandler) invalidBody(c *fiber.Ctx, err error) error {
	if errors.Is(err, dto.ErrMissingFilters) {
		return util.FormErrorResponse(c, fiber.StatusUnprocessableEntity,
			util.NewFormError("invalid request body", map[string]string{"filters": "must be an object"}),
			h.debug)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid request body",
		Debug:   h.debug,
	}, err)
}
