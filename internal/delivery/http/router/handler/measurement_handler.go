package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MeasurementHandler holds dependencies for measurement CRUD handlers.
type MeasurementHandler struct {
	uc     usecase.MeasurementUsecase
	logger *slog.Logger
}

// NewMeasurementHandler is the constructor for MeasurementHandler, injected by Fx.
func NewMeasurementHandler(uc usecase.MeasurementUsecase, logger *slog.Logger) *MeasurementHandler {
	return &MeasurementHandler{
		uc:     uc,
		logger: logger,
	}
}

type measurementRequest struct {
	Date           time.Time `json:"date" validate:"required"`
	WeightKg       *float64  `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	MuscleMassKg   *float64  `json:"muscleMassKg,omitempty" validate:"omitempty,gt=0"`
	WaistCm        *float64  `json:"waistCm,omitempty" validate:"omitempty,gt=0"`
	ChestCm        *float64  `json:"chestCm,omitempty" validate:"omitempty,gt=0"`
	Notes          string    `json:"notes,omitempty"`
}

func (r *measurementRequest) toInput() *usecase.MeasurementInput {
	return &usecase.MeasurementInput{
		Date:           r.Date,
		WeightKg:       r.WeightKg,
		BodyFatPercent: r.BodyFatPercent,
		MuscleMassKg:   r.MuscleMassKg,
		WaistCm:        r.WaistCm,
		ChestCm:        r.ChestCm,
		Notes:          r.Notes,
	}
}

// Create handles the measurement creation request.
func (h *MeasurementHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req measurementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	measurement, err := h.uc.CreateMeasurement(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMeasurementResponse(measurement), "Measurement created")
}

// List returns one page of the authenticated account's measurements.
func (h *MeasurementHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	page, perPage := pageParams(c)
	output, err := h.uc.ListMeasurements(c.Request().Context(), userID, &usecase.ListMeasurementsInput{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"measurements": toMeasurementResponses(output.Measurements),
		"meta": ListMeta{
			Total:   output.Total,
			Page:    output.Page,
			PerPage: output.PerPage,
		},
	}, "")
}

// Get returns one measurement owned by the authenticated account.
func (h *MeasurementHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	measurementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Measurement not found")
	}

	measurement, err := h.uc.GetMeasurement(c.Request().Context(), userID, measurementID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMeasurementResponse(measurement), "")
}

// Update replaces one measurement owned by the authenticated account.
func (h *MeasurementHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	measurementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Measurement not found")
	}

	var req measurementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	measurement, err := h.uc.UpdateMeasurement(c.Request().Context(), userID, measurementID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMeasurementResponse(measurement), "Measurement updated")
}

// Delete removes one measurement owned by the authenticated account.
func (h *MeasurementHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	measurementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Measurement not found")
	}

	if err := h.uc.DeleteMeasurement(c.Request().Context(), userID, measurementID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Measurement deleted")
}
