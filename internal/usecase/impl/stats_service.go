package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	recentWindow       = 30 * 24 * time.Hour
	popularExerciseCap = 5
	daysPerWeek        = 7
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWorkoutStats folds the owner's workout summaries into the analytics
// object. The store projects each record down to date, duration, volume and
// per-exercise set counts; everything else is derived here.
func (srv *statsService) GetWorkoutStats(ctx context.Context, userID uuid.UUID) (*entity.WorkoutStats, error) {
	summaries, err := srv.workoutRepo.SummarizeByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize workouts")
	}

	recent, err := srv.workoutRepo.CountByOwnerSince(ctx, userID, time.Now().Add(-recentWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to count recent workouts")
	}

	stats := foldSummaries(summaries)
	stats.RecentWorkouts = int(recent)

	srv.log(ctx).Debug("Workout stats computed",
		slog.Any("userID", userID),
		slog.Int("totalWorkouts", stats.TotalWorkouts))

	return stats, nil
}

// foldSummaries derives every aggregate except RecentWorkouts in one pass.
// Zero summaries yield zero counters, a zero-filled histogram and an empty
// ranking.
func foldSummaries(summaries []entity.WorkoutSummary) *entity.WorkoutStats {
	stats := &entity.WorkoutStats{
		TotalWorkouts:    len(summaries),
		WorkoutsByDay:    make([]entity.DayCount, daysPerWeek),
		PopularExercises: []entity.PopularExercise{},
	}
	for day := range stats.WorkoutsByDay {
		stats.WorkoutsByDay[day].Day = day
	}

	type exerciseTally struct {
		occurrences int
		totalSets   int
		firstSeen   int
	}
	tallies := make(map[string]*exerciseTally)

	durationSum := 0
	durationCount := 0
	order := 0

	for _, summary := range summaries {
		stats.TotalVolume += summary.TotalVolume
		stats.TotalExercises += len(summary.Exercises)
		stats.WorkoutsByDay[int(summary.Date.Weekday())].Count++

		if summary.DurationMinutes != nil {
			durationSum += *summary.DurationMinutes
			durationCount++
		}

		for _, exercise := range summary.Exercises {
			tally, ok := tallies[exercise.Name]
			if !ok {
				tally = &exerciseTally{firstSeen: order}
				tallies[exercise.Name] = tally
				order++
			}
			tally.occurrences++
			tally.totalSets += exercise.SetCount
		}
	}

	if durationCount > 0 {
		stats.AverageDuration = float64(durationSum) / float64(durationCount)
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	// Rank by occurrences; ties keep the order the names first appeared in.
	sort.SliceStable(names, func(i, j int) bool {
		a, b := tallies[names[i]], tallies[names[j]]
		if a.occurrences != b.occurrences {
			return a.occurrences > b.occurrences
		}

		return a.firstSeen < b.firstSeen
	})
	if len(names) > popularExerciseCap {
		names = names[:popularExerciseCap]
	}
	for _, name := range names {
		stats.PopularExercises = append(stats.PopularExercises, entity.PopularExercise{
			Name:        name,
			Occurrences: tallies[name].occurrences,
			TotalSets:   tallies[name].totalSets,
		})
	}

	return stats
}
