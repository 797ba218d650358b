package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/response"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkoutHandler holds dependencies for workout CRUD handlers.
type WorkoutHandler struct {
	uc     usecase.WorkoutUsecase
	logger *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler, injected by Fx.
func NewWorkoutHandler(uc usecase.WorkoutUsecase, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		uc:     uc,
		logger: logger,
	}
}

type workoutRequest struct {
	Name            string         `json:"name" validate:"required"`
	Date            time.Time      `json:"date" validate:"required"`
	Exercises       []ExerciseBody `json:"exercises" validate:"dive"`
	DurationMinutes *int           `json:"durationMinutes,omitempty" validate:"omitempty,min=0"`
	Notes           string         `json:"notes,omitempty"`
}

func (r *workoutRequest) toInput() *usecase.WorkoutInput {
	return &usecase.WorkoutInput{
		Name:            r.Name,
		Date:            r.Date,
		Exercises:       exercisesToInput(r.Exercises),
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}
}

// Create handles the workout creation request.
func (h *WorkoutHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req workoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workout, err := h.uc.CreateWorkout(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutResponse(workout), "Workout created")
}

// List returns one page of the authenticated account's workouts.
func (h *WorkoutHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	page, perPage := pageParams(c)
	output, err := h.uc.ListWorkouts(c.Request().Context(), userID, &usecase.ListWorkoutsInput{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"workouts": toWorkoutResponses(output.Workouts),
		"meta": ListMeta{
			Total:   output.Total,
			Page:    output.Page,
			PerPage: output.PerPage,
		},
	}, "")
}

// Get returns one workout owned by the authenticated account.
func (h *WorkoutHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Workout not found")
	}

	workout, err := h.uc.GetWorkout(c.Request().Context(), userID, workoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutResponse(workout), "")
}

// Update replaces one workout owned by the authenticated account.
func (h *WorkoutHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Workout not found")
	}

	var req workoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workout, err := h.uc.UpdateWorkout(c.Request().Context(), userID, workoutID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWorkoutResponse(workout), "Workout updated")
}

// Delete removes one workout owned by the authenticated account.
func (h *WorkoutHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Workout not found")
	}

	if err := h.uc.DeleteWorkout(c.Request().Context(), userID, workoutID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Workout deleted")
}

// pageParams reads pagination query parameters with out-of-range values left
// for the usecase layer to clamp.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))

	return page, perPage
}
