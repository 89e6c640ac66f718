package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/delivery/http/dto"
	"github.com/help-yourself-test/help-yourself/internal/delivery/http/middleware"
	"github.com/help-yourself-test/help-yourself/internal/pkg/response"
	"github.com/help-yourself-test/help-yourself/internal/pkg/validate"
	"github.com/help-yourself-test/help-yourself/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

type matchPreviewRequest struct {
	CandidateSkills []dto.SkillEntry `json:"candidate_skills"`
	RequiredSkills  []dto.SkillEntry `json:"required_skills" validate:"required"`
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// HandleJobMatch scores the authenticated user's profile against one job.
func (h *MatchHandler) HandleJobMatch(c fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	report, err := h.uc.CalculateMatch(c.Context(), userID, jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

// HandleMatchPreview scores two ad-hoc skill lists. Useful for trying
// out a profile before saving it.
func (h *MatchHandler) HandleMatchPreview(c fiber.Ctx) error {
	var req matchPreviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", validate.Fields(err), err)
	}

	sum := h.uc.Preview(dto.SkillNames(req.CandidateSkills), dto.SkillNames(req.RequiredSkills))
	return response.Success(c, fiber.StatusOK, response.MessageOK, sum)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
