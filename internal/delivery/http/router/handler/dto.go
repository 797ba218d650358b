// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"fittrack/internal/domain/entity"
	"fittrack/internal/usecase"
)

// UserResponse is the outward shape of an account. The credential hash is
// never part of it.
type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	BirthDate   *time.Time      `json:"birthDate,omitempty"`
	Gender      string          `json:"gender,omitempty"`
	Preferences PreferencesBody `json:"preferences"`
	Role        string          `json:"role"`
	IsActive    bool            `json:"isActive"`
	IsSuspended bool            `json:"isSuspended"`
	LastLoginAt *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PreferencesBody is the preferences sub-document in both requests and responses.
type PreferencesBody struct {
	FitnessLevel   string `json:"fitnessLevel"`
	UnitSystem     string `json:"unitSystem"`
	PrivateProfile bool   `json:"privateProfile"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		BirthDate: user.BirthDate,
		Gender:    user.Gender,
		Preferences: PreferencesBody{
			FitnessLevel:   string(user.Preferences.FitnessLevel),
			UnitSystem:     string(user.Preferences.UnitSystem),
			PrivateProfile: user.Preferences.PrivateProfile,
		},
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		IsSuspended: user.IsSuspended,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

// AuthResponse carries the account and its fresh token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenPairResponse carries a refreshed token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ExerciseSetBody is one set of an exercise in requests and responses.
type ExerciseSetBody struct {
	Reps            int     `json:"reps" validate:"min=0"`
	Weight          float64 `json:"weight" validate:"min=0"`
	DurationSeconds int     `json:"durationSeconds,omitempty" validate:"min=0"`
	RestSeconds     int     `json:"restSeconds,omitempty" validate:"min=0"`
	Effort          int     `json:"effort,omitempty" validate:"min=0,max=10"`
}

// ExerciseBody is one exercise with its sets in requests and responses.
type ExerciseBody struct {
	Name string            `json:"name" validate:"required"`
	Sets []ExerciseSetBody `json:"sets" validate:"dive"`
}

// WorkoutResponse is the outward shape of a workout record.
type WorkoutResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Date            time.Time      `json:"date"`
	Exercises       []ExerciseBody `json:"exercises"`
	TotalVolume     float64        `json:"totalVolume"`
	DurationMinutes *int           `json:"durationMinutes,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func toWorkoutResponse(workout *entity.Workout) WorkoutResponse {
	exercises := make([]ExerciseBody, 0, len(workout.Exercises))
	for _, exercise := range workout.Exercises {
		sets := make([]ExerciseSetBody, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			sets = append(sets, ExerciseSetBody{
				Reps:            set.Reps,
				Weight:          set.Weight,
				DurationSeconds: set.DurationSeconds,
				RestSeconds:     set.RestSeconds,
				Effort:          set.Effort,
			})
		}
		exercises = append(exercises, ExerciseBody{Name: exercise.Name, Sets: sets})
	}

	return WorkoutResponse{
		ID:              workout.ID.String(),
		Name:            workout.Name,
		Date:            workout.Date,
		Exercises:       exercises,
		TotalVolume:     workout.TotalVolume,
		DurationMinutes: workout.DurationMinutes,
		Notes:           workout.Notes,
		CreatedAt:       workout.CreatedAt,
		UpdatedAt:       workout.UpdatedAt,
	}
}

func toWorkoutResponses(workouts []*entity.Workout) []WorkoutResponse {
	out := make([]WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		out = append(out, toWorkoutResponse(workout))
	}

	return out
}

// MeasurementResponse is the outward shape of a body-measurement record.
type MeasurementResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	WeightKg       *float64  `json:"weightKg,omitempty"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	MuscleMassKg   *float64  `json:"muscleMassKg,omitempty"`
	WaistCm        *float64  `json:"waistCm,omitempty"`
	ChestCm        *float64  `json:"chestCm,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toMeasurementResponse(measurement *entity.Measurement) MeasurementResponse {
	return MeasurementResponse{
		ID:             measurement.ID.String(),
		Date:           measurement.Date,
		WeightKg:       measurement.WeightKg,
		BodyFatPercent: measurement.BodyFatPercent,
		MuscleMassKg:   measurement.MuscleMassKg,
		WaistCm:        measurement.WaistCm,
		ChestCm:        measurement.ChestCm,
		Notes:          measurement.Notes,
		CreatedAt:      measurement.CreatedAt,
		UpdatedAt:      measurement.UpdatedAt,
	}
}

func toMeasurementResponses(measurements []*entity.Measurement) []MeasurementResponse {
	out := make([]MeasurementResponse, 0, len(measurements))
	for _, measurement := range measurements {
		out = append(out, toMeasurementResponse(measurement))
	}

	return out
}

// StatsResponse is the outward shape of the analytics summary.
type StatsResponse struct {
	TotalWorkouts    int                   `json:"totalWorkouts"`
	RecentWorkouts   int                   `json:"recentWorkouts"`
	TotalVolume      float64               `json:"totalVolume"`
	AverageDuration  float64               `json:"averageDuration"`
	TotalExercises   int                   `json:"totalExercises"`
	WorkoutsByDay    []DayCountBody        `json:"workoutsByDay"`
	PopularExercises []PopularExerciseBody `json:"popularExercises"`
}

// DayCountBody is one bucket of the day-of-week histogram.
type DayCountBody struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

// PopularExerciseBody is one entry of the popular-exercise ranking.
type PopularExerciseBody struct {
	Name        string `json:"name"`
	Occurrences int    `json:"occurrences"`
	TotalSets   int    `json:"totalSets"`
}

func toStatsResponse(stats *entity.WorkoutStats) StatsResponse {
	byDay := make([]DayCountBody, 0, len(stats.WorkoutsByDay))
	for _, bucket := range stats.WorkoutsByDay {
		byDay = append(byDay, DayCountBody{Day: bucket.Day, Count: bucket.Count})
	}

	popular := make([]PopularExerciseBody, 0, len(stats.PopularExercises))
	for _, exercise := range stats.PopularExercises {
		popular = append(popular, PopularExerciseBody{
			Name:        exercise.Name,
			Occurrences: exercise.Occurrences,
			TotalSets:   exercise.TotalSets,
		})
	}

	return StatsResponse{
		TotalWorkouts:    stats.TotalWorkouts,
		RecentWorkouts:   stats.RecentWorkouts,
		TotalVolume:      stats.TotalVolume,
		AverageDuration:  stats.AverageDuration,
		TotalExercises:   stats.TotalExercises,
		WorkoutsByDay:    byDay,
		PopularExercises: popular,
	}
}

// ListMeta is the pagination block attached to listing responses.
type ListMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
}

func exercisesToInput(exercises []ExerciseBody) []usecase.ExerciseInput {
	out := make([]usecase.ExerciseInput, 0, len(exercises))
	for _, exercise := range exercises {
		sets := make([]usecase.ExerciseSetInput, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			sets = append(sets, usecase.ExerciseSetInput{
				Reps:            set.Reps,
				Weight:          set.Weight,
				DurationSeconds: set.DurationSeconds,
				RestSeconds:     set.RestSeconds,
				Effort:          set.Effort,
			})
		}
		out = append(out, usecase.ExerciseInput{Name: exercise.Name, Sets: sets})
	}

	return out
}
