package exercise_service

import (
	"context"
	"strconv"
	"strings"
	"time"

	userRepository "github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/app/repository/user-repository"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/apperror"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/helper"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/logger"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/entity"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webrequest"
	"github.com/kuskoveckis/FreeCodeCamp-Exercise-Tracker/internal/model/webresponse"
)

type ExerciseServiceImpl struct {
	UserRepository userRepository.UserRepository
	// Location decides which calendar day "today" is for entries without a date.
	Location *time.Location
	Now      func() time.Time
}

func (e *ExerciseServiceImpl) AddExercise(ctx context.Context, userID string, request webrequest.CreateExerciseRequest) (webresponse.ExerciseResponse, error) {
	if validate := request.Validate(); len(validate) != 0 {
		return webresponse.ExerciseResponse{}, apperror.Validation("Please provide a description, a duration and an optional date", validate)
	}

	duration, _ := request.GetDuration()
	date := helper.Today(e.Now(), e.Location)
	if parsed, ok := request.GetCalendarDate(); ok {
		date = parsed
	}

	entry := entity.LogEntry{
		Description: request.GetDescription(),
		Duration:    duration,
		Date:        date,
	}

	user, err := e.UserRepository.AppendLogEntry(ctx, userID, entry)
	if err != nil {
		return webresponse.ExerciseResponse{}, err
	}

	logger.AppLogger.Debug().Str("user_id", user.ID).Time("date", entry.Date).Msg("exercise_logged")

	return webresponse.ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Date:        helper.FormatDisplayDate(entry.Date),
		Description: entry.Description,
		Duration:    entry.Duration,
	}, nil
}

func (e *ExerciseServiceImpl) GetLog(ctx context.Context, userID string, request webrequest.LogQueryRequest) (webresponse.LogResponse, error) {
	query, err := parseLogQuery(request)
	if err != nil {
		return webresponse.LogResponse{}, err
	}

	user, err := e.UserRepository.GetUserByID(ctx, userID)
	if err != nil {
		return webresponse.LogResponse{}, err
	}

	result := FilterLog(user.Log, query)

	response := webresponse.LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    result.Count,
		Log:      make([]webresponse.LogItemResponse, 0, len(result.Entries)),
	}
	if result.From != nil {
		response.From = helper.FormatDisplayDate(*result.From)
	}
	if result.To != nil {
		response.To = helper.FormatDisplayDate(*result.To)
	}
	for _, entry := range result.Entries {
		response.Log = append(response.Log, webresponse.LogItemResponse{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        helper.FormatDisplayDate(entry.Date),
		})
	}

	return response, nil
}

// parseLogQuery rejects malformed from/to/limit values instead of silently
// ignoring them. Empty values mean the filter was not supplied.
func parseLogQuery(request webrequest.LogQueryRequest) (LogQuery, error) {
	var query LogQuery

	if raw := strings.TrimSpace(request.From); raw != "" {
		from, err := helper.ParseCalendarDate(raw)
		if err != nil {
			return LogQuery{}, apperror.BadRequest("Invalid 'from' date, expected YYYY-MM-DD")
		}
		query.From = &from
	}

	if raw := strings.TrimSpace(request.To); raw != "" {
		to, err := helper.ParseCalendarDate(raw)
		if err != nil {
			return LogQuery{}, apperror.BadRequest("Invalid 'to' date, expected YYYY-MM-DD")
		}
		query.To = &to
	}

	if raw := strings.TrimSpace(request.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return LogQuery{}, apperror.BadRequest("Invalid 'limit', expected an integer")
		}
		query.Limit = limit
	}

	return query, nil
}

func NewExerciseService(userRepository userRepository.UserRepository, location *time.Location) ExerciseService {
	if location == nil {
		location = time.UTC
	}
	return &ExerciseServiceImpl{
		UserRepository: userRepository,
		Location:       location,
		Now: func() time.Time {
			return helper.GetCurrentTime(location)
		},
	}
}
