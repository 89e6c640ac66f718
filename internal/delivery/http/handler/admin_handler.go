package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/help-yourself-test/help-yourself/internal/delivery/http/middleware"
	"github.com/help-yourself-test/help-yourself/internal/pkg/response"
	"github.com/help-yourself-test/help-yourself/internal/pkg/validate"
	"github.com/help-yourself-test/help-yourself/internal/usecase"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

type approvalDecisionRequest struct {
	Approve *bool `json:"approve" validate:"required"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Get("/approvals", h.PendingApprovals)
	r.Post("/approvals/:user_id", h.DecideApproval)
	r.Put("/users/:user_id/active", h.SetUserActive)
	r.Get("/users/status", h.UserStatus)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, users)
}

func (h *AdminHandler) PendingApprovals(c fiber.Ctx) error {
	users, err := h.uc.PendingApprovals(c.Context())
	if err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, users)
}

func (h *AdminHandler) DecideApproval(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req approvalDecisionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", validate.Fields(err), err)
	}

	usr, err := h.uc.DecideApproval(c.Context(), id, *req.Approve)
	if err != nil {
		return mapAdminUsecaseError(err)
	}

	msg := "Admin request rejected"
	if *req.Approve {
		msg = "Admin request approved"
	}
	return response.Success(c, fiber.StatusOK, msg, usr)
}

func (h *AdminHandler) SetUserActive(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	var req setActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", validate.Fields(err), err)
	}

	usr, err := h.uc.SetUserActive(c.Context(), id, *req.Active)
	if err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, usr)
}

// UserStatus reports the login-eligibility diagnostic for one account,
// looked up by email.
func (h *AdminHandler) UserStatus(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email query parameter required", nil, nil)
	}

	status, err := h.uc.UserStatus(c.Context(), email)
	if err != nil {
		return mapAdminUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}

func mapAdminUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrNoPendingApproval):
		return middleware.NewAppError(fiber.StatusConflict, "No pending admin approval request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
