package handler

import (
	"log/slog"
	"net/http"

	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administrative handlers.
type AdminHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.UserUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns one page of all accounts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, perPage := pageParams(c)

	output, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": toUserResponses(output.Users),
		"meta": ListMeta{
			Total:   output.Total,
			Page:    output.Page,
			PerPage: output.PerPage,
		},
	}, "")
}

// SuspendUser blocks an account from administrative actions.
func (h *AdminHandler) SuspendUser(c echo.Context) error {
	return h.setSuspended(c, true, "User suspended")
}

// ReinstateUser lifts a suspension.
func (h *AdminHandler) ReinstateUser(c echo.Context) error {
	return h.setSuspended(c, false, "User reinstated")
}

func (h *AdminHandler) setSuspended(c echo.Context, suspended bool, message string) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	if err := h.uc.SetSuspended(c.Request().Context(), targetID, suspended); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}
