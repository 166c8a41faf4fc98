package availability

import (
	"availability-service/internal/app/config"
	"availability-service/internal/app/contracts"
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/dto/responses"
	"availability-service/internal/pkg/exceptions"
	"availability-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	cacheKeyNextSlot = "availability:next_slot"
	cacheKeySlots    = "availability:slots"
)

type AvailabilityUsecase struct {
	cache    contracts.RedisRepository
	config   *config.InternalConfig
	location *time.Location
	logger   *zap.Logger
}

func NewAvailabilityUsecase(
	cache contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) *AvailabilityUsecase {
	return &AvailabilityUsecase{
		cache:    cache,
		config:   internalConfig,
		location: location,
		logger:   logger,
	}
}

func (u *AvailabilityUsecase) FindNextSlot(ctx context.Context, request *requests.NextSlot) (*responses.NextSlot, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	log := u.logger.With(zap.String(constvars.LoggingRequestIDKey, requestID))

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	cacheKey := utils.GenerateCacheKey(cacheKeyNextSlot, payload)

	var cached responses.NextSlot
	if u.readCache(ctx, log, cacheKey, &cached) {
		return &cached, nil
	}

	from, err := utils.ParseTimestamp(request.From, u.location)
	if err != nil {
		return nil, err
	}
	plan, busy, calendar, err := u.buildSearchInputs(request.Windows, request.BusySlots, request.Calendar)
	if err != nil {
		return nil, err
	}

	slot, found, err := FindNextSlot(NextSlotQuery{
		From:            from,
		SlotDuration:    time.Duration(request.SlotDurationMinutes) * time.Minute,
		SlotInterval:    time.Duration(request.SlotIntervalMinutes) * time.Minute,
		BusySlots:       busy,
		WindowsFor:      plan.WindowsFor,
		Calendar:        calendar,
		SearchLimitDays: request.SearchLimitDays,
	})
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}

	response := &responses.NextSlot{Found: found}
	if found {
		response.SlotStart = utils.FormatTimestamp(slot)
		response.SlotEnd = utils.FormatTimestamp(slot.Add(time.Duration(request.SlotDurationMinutes) * time.Minute))
	}

	log.Info("next slot search finished",
		zap.Bool("found", found),
		zap.String("slot_start", response.SlotStart))

	u.writeCache(ctx, log, cacheKey, response)
	return response, nil
}

func (u *AvailabilityUsecase) ListAvailableSlots(ctx context.Context, request *requests.ListSlots) (*responses.SlotList, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	log := u.logger.With(zap.String(constvars.LoggingRequestIDKey, requestID))

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	cacheKey := utils.GenerateCacheKey(cacheKeySlots, payload)

	var cached responses.SlotList
	if u.readCache(ctx, log, cacheKey, &cached) {
		return &cached, nil
	}

	periodStart, err := utils.ParseTimestamp(request.PeriodStart, u.location)
	if err != nil {
		return nil, err
	}
	periodEnd, err := utils.ParseTimestamp(request.PeriodEnd, u.location)
	if err != nil {
		return nil, err
	}
	period, err := NewInterval(periodStart, periodEnd)
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}
	plan, busy, calendar, err := u.buildSearchInputs(request.Windows, request.BusySlots, request.Calendar)
	if err != nil {
		return nil, err
	}

	slots, err := FindAvailableSlots(SlotListQuery{
		Period:       period,
		SlotDuration: time.Duration(request.SlotDurationMinutes) * time.Minute,
		SlotInterval: time.Duration(request.SlotIntervalMinutes) * time.Minute,
		BusySlots:    busy,
		WindowsFor:   plan.WindowsFor,
		Calendar:     calendar,
		MaxSlots:     request.MaxSlots,
	})
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}

	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, utils.FormatTimestamp(s))
	}
	response := &responses.SlotList{Slots: formatted, Count: len(formatted)}

	log.Info("slot listing finished",
		zap.Int(constvars.LoggingSlotCountKey, response.Count))

	u.writeCache(ctx, log, cacheKey, response)
	return response, nil
}

// buildSearchInputs converts the wire shapes into engine values. Engine
// construction failures surface as 422s since they describe client input.
func (u *AvailabilityUsecase) buildSearchInputs(
	windows []requests.TimeWindowDTO,
	busySlots []requests.BusySlotDTO,
	calendarDTO *requests.CalendarDTO,
) (WeekPlan, []BusySlot, *BusinessCalendar, error) {
	entries := make([]PlanEntry, 0, len(windows))
	for _, w := range windows {
		entries = append(entries, PlanEntry{Days: w.Days, Start: w.Start, End: w.End})
	}
	plan, err := BuildWeekPlan(entries)
	if err != nil {
		return nil, nil, nil, exceptions.ErrEngineValidation(err)
	}

	busy := make([]BusySlot, 0, len(busySlots))
	for _, b := range busySlots {
		start, err := utils.ParseTimestamp(b.Start, u.location)
		if err != nil {
			return nil, nil, nil, err
		}
		end, err := utils.ParseTimestamp(b.End, u.location)
		if err != nil {
			return nil, nil, nil, err
		}
		slot, err := NewInterval(start, end)
		if err != nil {
			return nil, nil, nil, exceptions.ErrEngineValidation(err)
		}
		busy = append(busy, slot)
	}

	calendar, err := BuildCalendar(calendarDTO, u.location)
	if err != nil {
		return nil, nil, nil, err
	}
	return plan, busy, calendar, nil
}

// BuildCalendar maps an optional calendar DTO to an engine calendar. A nil
// DTO means no calendar filtering at all; an empty working-day list means
// the Monday-Friday default.
func BuildCalendar(dto *requests.CalendarDTO, location *time.Location) (*BusinessCalendar, error) {
	if dto == nil {
		return nil, nil
	}

	holidays := make([]time.Time, 0, len(dto.Holidays))
	for _, h := range dto.Holidays {
		day, err := utils.ParseDate(h, location)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, day)
	}

	weekdays := make([]time.Weekday, 0, len(dto.WorkingDays))
	for _, token := range dto.WorkingDays {
		wd, err := ParseWeekday(token)
		if err != nil {
			return nil, exceptions.ErrEngineValidation(err)
		}
		weekdays = append(weekdays, wd)
	}
	if len(weekdays) == 0 {
		weekdays = DefaultBusinessCalendar().WorkingWeekdays()
	}

	calendar, err := NewBusinessCalendar(holidays, weekdays)
	if err != nil {
		return nil, exceptions.ErrEngineValidation(err)
	}
	return &calendar, nil
}

func (u *AvailabilityUsecase) readCache(ctx context.Context, log *zap.Logger, key string, dst interface{}) bool {
	if u.cache == nil {
		return false
	}
	raw, err := u.cache.Get(ctx, key)
	if err != nil {
		log.Warn("result cache read failed", zap.String(constvars.LoggingCacheKeyKey, key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warn("result cache entry is malformed", zap.String(constvars.LoggingCacheKeyKey, key), zap.Error(err))
		return false
	}
	log.Debug("result cache hit", zap.String(constvars.LoggingCacheKeyKey, key))
	return true
}

// writeCache is best-effort: a cache failure never fails the request.
func (u *AvailabilityUsecase) writeCache(ctx context.Context, log *zap.Logger, key string, value interface{}) {
	if u.cache == nil {
		return
	}
	ttl := time.Duration(u.config.Cache.ResultTTLInSeconds) * time.Second
	if ttl <= 0 {
		return
	}
	if err := u.cache.Set(ctx, key, value, ttl); err != nil {
		log.Warn("result cache write failed", zap.String(constvars.LoggingCacheKeyKey, key), zap.Error(err))
	}
}
