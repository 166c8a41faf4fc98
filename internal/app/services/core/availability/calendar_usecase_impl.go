package availability

import (
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"availability-service/internal/pkg/exceptions"
	"availability-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type CalendarUsecase struct {
	location *time.Location
	logger   *zap.Logger
}

func NewCalendarUsecase(location *time.Location, logger *zap.Logger) *CalendarUsecase {
	return &CalendarUsecase{
		location: location,
		logger:   logger,
	}
}

func (u *CalendarUsecase) WorkingDays(ctx context.Context, request *requests.WorkingDays) (*responses.WorkingDays, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	log := u.logger.With(zap.String(constvars.LoggingRequestIDKey, requestID))

	start, err := utils.ParseDate(request.Start, u.location)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(request.End, u.location)
	if err != nil {
		return nil, err
	}
	calendar, err := u.resolveCalendar(request.Calendar)
	if err != nil {
		return nil, err
	}

	days, err := calendar.WorkingDaysBetween(start, end, !request.Exclusive)
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}

	formatted := make([]string, 0, len(days))
	for _, d := range days {
		formatted = append(formatted, utils.FormatDate(d))
	}

	log.Info("working days enumerated",
		zap.Int("day_count", len(formatted)))

	return &responses.WorkingDays{
		WorkingDays:     formatted,
		Count:           len(formatted),
		IsWorkingPeriod: calendar.IsWorkingPeriod(start, end),
	}, nil
}

func (u *CalendarUsecase) NavigateWorkingDay(ctx context.Context, request *requests.NavigateWorkingDay) (*responses.NavigateWorkingDay, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	log := u.logger.With(zap.String(constvars.LoggingRequestIDKey, requestID))

	date, err := utils.ParseDate(request.Date, u.location)
	if err != nil {
		return nil, err
	}
	calendar, err := u.resolveCalendar(request.Calendar)
	if err != nil {
		return nil, err
	}

	var (
		day   time.Time
		found bool
	)
	switch {
	case request.MaxDays > 0 && request.Direction == "next":
		day, found, err = calendar.NextWorkingDayWithLimit(date, request.MaxDays)
	case request.MaxDays > 0:
		day, found, err = calendar.PreviousWorkingDayWithLimit(date, request.MaxDays)
	case request.Direction == "next":
		day, found = calendar.NextWorkingDay(date), true
	default:
		day, found = calendar.PreviousWorkingDay(date), true
	}
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}

	response := &responses.NavigateWorkingDay{Found: found}
	if found {
		response.Date = utils.FormatDate(day)
	}

	log.Info("working day navigation finished",
		zap.String("direction", request.Direction),
		zap.Bool("found", found))

	return response, nil
}

func (u *CalendarUsecase) resolveCalendar(dto *requests.CalendarDTO) (*BusinessCalendar, error) {
	calendar, err := BuildCalendar(dto, u.location)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		def := DefaultBusinessCalendar()
		return &def, nil
	}
	return calendar, nil
}
