package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/domain/entity"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile and analytics handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, statsUC usecase.StatsUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:      uc,
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetProfile returns the authenticated account's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

type updateProfileRequest struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Gender    *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

// UpdateProfile applies a partial update to the authenticated account's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated")
}

type updatePreferencesRequest struct {
	FitnessLevel   *string `json:"fitnessLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	UnitSystem     *string `json:"unitSystem,omitempty" validate:"omitempty,oneof=metric imperial"`
	PrivateProfile *bool   `json:"privateProfile,omitempty"`
}

// UpdatePreferences applies a partial update to the authenticated account's preferences.
func (h *UserHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req updatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdatePreferencesInput{PrivateProfile: req.PrivateProfile}
	if req.FitnessLevel != nil {
		level := entity.FitnessLevel(*req.FitnessLevel)
		input.FitnessLevel = &level
	}
	if req.UnitSystem != nil {
		system := entity.UnitSystem(*req.UnitSystem)
		input.UnitSystem = &system
	}

	user, err := h.uc.UpdatePreferences(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Preferences updated")
}

// GetStats returns the authenticated account's analytics summary.
func (h *UserHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	stats, err := h.statsUC.GetWorkoutStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStatsResponse(stats), "")
}

// DeleteAccount removes the authenticated account and everything it owns.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
