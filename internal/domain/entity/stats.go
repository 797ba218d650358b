package entity

import "time"

// WorkoutStats is the per-user analytics summary derived from workout records.
// Every field tolerates an account with zero workouts: counters stay zero and
// slices stay empty.
type WorkoutStats struct {
	TotalWorkouts    int               // Count of all workout records.
	RecentWorkouts   int               // Count of records dated within the last 30 days.
	TotalVolume      float64           // Grand sum of each record's TotalVolume.
	AverageDuration  float64           // Mean DurationMinutes across records that declare one.
	TotalExercises   int               // Sum of exercise-list lengths across records.
	WorkoutsByDay    []DayCount        // Histogram keyed by day-of-week, ascending 0 (Sunday) to 6.
	PopularExercises []PopularExercise // Top five exercise names by occurrence.
}

// DayCount is one bucket of the day-of-week histogram.
type DayCount struct {
	Day   int // 0 (Sunday) through 6 (Saturday).
	Count int // Workouts logged on that day of the week.
}

// PopularExercise is one entry of the popular-exercise ranking.
type PopularExercise struct {
	Name        string // Exercise name as logged.
	Occurrences int    // Times the exercise appears across workout records.
	TotalSets   int    // Total set count across all occurrences.
}

// WorkoutSummary is the projection of a workout used by the analytics
// aggregation: only the fields the statistics fold needs.
type WorkoutSummary struct {
	Date            time.Time
	DurationMinutes *int
	TotalVolume     float64
	Exercises       []ExerciseSummary
}

// ExerciseSummary is the per-exercise slice of a WorkoutSummary.
type ExerciseSummary struct {
	Name     string
	SetCount int
}
