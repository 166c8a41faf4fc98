package availability

import (
	"availability-service/internal/app/config"
	"availability-service/internal/pkg/dto/requests"
	"availability-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRedisRepository keeps cache entries in a map so the usecase cache
// path can be exercised without a running redis.
type fakeRedisRepository struct {
	entries map[string]string
	sets    int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{entries: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = string(raw)
	f.sets++
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.entries[key], nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Cache: config.Cache{ResultTTLInSeconds: 60},
	}
}

func officeWindowDTOs() []requests.TimeWindowDTO {
	return []requests.TimeWindowDTO{
		{Days: []string{"mon", "tue", "wed", "thu", "fri"}, Start: "09:00", End: "17:00"},
	}
}

func TestAvailabilityUsecaseFindNextSlot(t *testing.T) {
	cache := newFakeRedisRepository()
	usecase := NewAvailabilityUsecase(cache, testInternalConfig(), time.UTC, zap.NewNop())

	t.Run("First Fit Is Returned And Cached", func(t *testing.T) {
		request := &requests.NextSlot{
			From:                "2024-01-08T08:00:00",
			SlotDurationMinutes: 60,
			SlotIntervalMinutes: 15,
			Windows:             officeWindowDTOs(),
			BusySlots: []requests.BusySlotDTO{
				{Start: "2024-01-08T09:30:00", End: "2024-01-08T12:00:00"},
			},
		}

		response, err := usecase.FindNextSlot(context.Background(), request)

		assert.NoError(t, err)
		assert.True(t, response.Found)
		assert.Equal(t, "2024-01-08T12:00:00", response.SlotStart, "the busy block should push the slot to noon")
		assert.Equal(t, "2024-01-08T13:00:00", response.SlotEnd)
		assert.Equal(t, 1, cache.sets, "a computed response should be written to the cache")

		again, err := usecase.FindNextSlot(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, response, again, "the second call should serve the cached response")
		assert.Equal(t, 1, cache.sets, "a cache hit should not rewrite the entry")
	})

	t.Run("Holiday Calendar Skips The Day", func(t *testing.T) {
		response, err := usecase.FindNextSlot(context.Background(), &requests.NextSlot{
			From:                "2024-01-08T16:00:00", // Monday afternoon
			SlotDurationMinutes: 120,
			SlotIntervalMinutes: 15,
			Windows:             officeWindowDTOs(),
			Calendar: &requests.CalendarDTO{
				Holidays: []string{"2024-01-09"}, // Tuesday
			},
		})

		assert.NoError(t, err)
		assert.True(t, response.Found)
		assert.Equal(t, "2024-01-10T09:00:00", response.SlotStart, "the Tuesday holiday should push the slot to Wednesday")
	})

	t.Run("Exhausted Horizon Is Not An Error", func(t *testing.T) {
		response, err := usecase.FindNextSlot(context.Background(), &requests.NextSlot{
			From:                "2024-01-08T08:00:00",
			SlotDurationMinutes: 60,
			SlotIntervalMinutes: 15,
			Windows: []requests.TimeWindowDTO{
				{Days: []string{"mon"}, Start: "09:00", End: "09:30"}, // too short for an hour
			},
			SearchLimitDays: 7,
		})

		assert.NoError(t, err)
		assert.False(t, response.Found)
		assert.Empty(t, response.SlotStart)
	})

	t.Run("Bad Timestamp Is A Client Error", func(t *testing.T) {
		_, err := usecase.FindNextSlot(context.Background(), &requests.NextSlot{
			From:                "08 January 2024",
			SlotDurationMinutes: 60,
			SlotIntervalMinutes: 15,
			Windows:             officeWindowDTOs(),
		})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Bad Window Clock Is A Client Error", func(t *testing.T) {
		_, err := usecase.FindNextSlot(context.Background(), &requests.NextSlot{
			From:                "2024-01-08T08:00:00",
			SlotDurationMinutes: 60,
			SlotIntervalMinutes: 15,
			Windows: []requests.TimeWindowDTO{
				{Days: []string{"mon"}, Start: "nine", End: "17:00"},
			},
		})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})
}

func TestAvailabilityUsecaseListAvailableSlots(t *testing.T) {
	usecase := NewAvailabilityUsecase(newFakeRedisRepository(), testInternalConfig(), time.UTC, zap.NewNop())

	t.Run("Full Monday At Default Granularity", func(t *testing.T) {
		response, err := usecase.ListAvailableSlots(context.Background(), &requests.ListSlots{
			PeriodStart:         "2024-01-08T09:00:00",
			PeriodEnd:           "2024-01-08T17:00:00",
			SlotDurationMinutes: 60,
			Windows:             officeWindowDTOs(),
		})

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, response.Count, 9, "an empty eight-hour day should offer at least nine hourly starts")
		assert.Equal(t, "2024-01-08T09:00:00", response.Slots[0])
		assert.Equal(t, len(response.Slots), response.Count)
	})

	t.Run("Max Slots Caps The Listing", func(t *testing.T) {
		response, err := usecase.ListAvailableSlots(context.Background(), &requests.ListSlots{
			PeriodStart:         "2024-01-08T09:00:00",
			PeriodEnd:           "2024-01-12T17:00:00",
			SlotDurationMinutes: 30,
			MaxSlots:            5,
			Windows:             officeWindowDTOs(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, response.Count)
	})

	t.Run("Inverted Period Is Rejected", func(t *testing.T) {
		_, err := usecase.ListAvailableSlots(context.Background(), &requests.ListSlots{
			PeriodStart:         "2024-01-12T17:00:00",
			PeriodEnd:           "2024-01-08T09:00:00",
			SlotDurationMinutes: 30,
			Windows:             officeWindowDTOs(),
		})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})
}

func TestCalendarUsecase(t *testing.T) {
	usecase := NewCalendarUsecase(time.UTC, zap.NewNop())

	t.Run("Working Days Of A Full Week", func(t *testing.T) {
		response, err := usecase.WorkingDays(context.Background(), &requests.WorkingDays{
			Start: "2024-01-08", // Monday
			End:   "2024-01-14", // Sunday
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, response.Count)
		assert.Equal(t, []string{"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11", "2024-01-12"}, response.WorkingDays)
		assert.False(t, response.IsWorkingPeriod, "a range reaching into the weekend is not a working period")
	})

	t.Run("Holiday Shrinks The Range", func(t *testing.T) {
		response, err := usecase.WorkingDays(context.Background(), &requests.WorkingDays{
			Start: "2024-01-08",
			End:   "2024-01-12",
			Calendar: &requests.CalendarDTO{
				Holidays: []string{"2024-01-09"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, response.Count)
		assert.NotContains(t, response.WorkingDays, "2024-01-09")
	})

	t.Run("Navigation Over A Weekend", func(t *testing.T) {
		response, err := usecase.NavigateWorkingDay(context.Background(), &requests.NavigateWorkingDay{
			Date:      "2024-01-12", // Friday
			Direction: "next",
		})

		assert.NoError(t, err)
		assert.True(t, response.Found)
		assert.Equal(t, "2024-01-15", response.Date, "the next working day after Friday is Monday")
	})

	t.Run("Bounded Navigation Can Come Up Empty", func(t *testing.T) {
		response, err := usecase.NavigateWorkingDay(context.Background(), &requests.NavigateWorkingDay{
			Date:      "2024-01-12",
			Direction: "next",
			MaxDays:   2, // Saturday and Sunday only
		})

		assert.NoError(t, err)
		assert.False(t, response.Found)
		assert.Empty(t, response.Date)
	})

	t.Run("Inverted Range Is Rejected", func(t *testing.T) {
		_, err := usecase.WorkingDays(context.Background(), &requests.WorkingDays{
			Start: "2024-01-12",
			End:   "2024-01-08",
		})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})
}
