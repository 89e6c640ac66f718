package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/delivery/http/middleware"
	"github.com/help-yourself-test/help-yourself/internal/domain/job"
	"github.com/help-yourself-test/help-yourself/internal/pkg/response"
	"github.com/help-yourself-test/help-yourself/internal/pkg/validate"
	"github.com/help-yourself-test/help-yourself/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type jobRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Company             string     `json:"company" validate:"required,max=200"`
	Location            string     `json:"location" validate:"max=200"`
	JobType             string     `json:"job_type" validate:"required,oneof=full-time part-time contract freelance internship"`
	WorkMode            string     `json:"work_mode" validate:"required,oneof=remote on-site hybrid"`
	Experience          string     `json:"experience" validate:"omitempty,oneof=entry junior mid senior lead executive"`
	SalaryMin           int64      `json:"salary_min" validate:"min=0"`
	SalaryMax           int64      `json:"salary_max" validate:"min=0"`
	SalaryCurrency      string     `json:"salary_currency" validate:"omitempty,len=3"`
	Description         string     `json:"description" validate:"required"`
	Requirements        []string   `json:"requirements"`
	Skills              []string   `json:"skills"`
	Benefits            []string   `json:"benefits"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	ExpiryDate          *time.Time `json:"expiry_date"`
	ContactEmail        string     `json:"contact_email" validate:"omitempty,email"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, err := h.uc.ListJobs(c.Context(), job.ListFilter{
		JobType:  c.Query("job_type"),
		WorkMode: c.Query("work_mode"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, page)
}

func (h *JobHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"job":              j,
		"formatted_salary": j.FormattedSalary(),
	})
}

func (h *JobHandler) HandleCreateJob(c fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	req, err := bindJobRequest(c)
	if err != nil {
		return err
	}

	created, err := h.uc.CreateJob(c.Context(), userID, currentRole(c), jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", created)
}

func (h *JobHandler) HandleUpdateJob(c fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	req, err := bindJobRequest(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.UpdateJob(c.Context(), userID, currentRole(c), id, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", updated)
}

func (h *JobHandler) HandleDeleteJob(c fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	if err := h.uc.DeleteJob(c.Context(), userID, currentRole(c), id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

func bindJobRequest(c fiber.Ctx) (jobRequest, error) {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return jobRequest{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return jobRequest{}, middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", validate.Fields(err), err)
	}
	return req, nil
}

func jobInputFromRequest(req jobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		JobType:             req.JobType,
		WorkMode:            req.WorkMode,
		Experience:          req.Experience,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      req.SalaryCurrency,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Skills:              req.Skills,
		Benefits:            req.Benefits,
		ApplicationDeadline: req.ApplicationDeadline,
		ExpiryDate:          req.ExpiryDate,
		ContactEmail:        req.ContactEmail,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
