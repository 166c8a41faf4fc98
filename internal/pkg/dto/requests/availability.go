package requests

// TimeWindowDTO is one recurring availability rule: weekday tokens plus
// wall-clock boundaries. End before start denotes an overnight window.
type TimeWindowDTO struct {
	Days  []string `json:"days" validate:"required,min=1"`
	Start string   `json:"start" validate:"required"`
	End   string   `json:"end" validate:"required"`
}

// BusySlotDTO is an already-committed absolute interval.
type BusySlotDTO struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// CalendarDTO describes the business calendar for a search. A nil calendar
// on a request means every day is eligible.
type CalendarDTO struct {
	WorkingDays []string `json:"working_days" validate:"omitempty,min=1"`
	Holidays    []string `json:"holidays" validate:"omitempty,dive,datetime=2006-01-02"`
}

// NextSlot asks for the first conflict-free slot at or after From.
type NextSlot struct {
	From                string          `json:"from" validate:"required"`
	SlotDurationMinutes int             `json:"slot_duration_minutes" validate:"required,gt=0"`
	SlotIntervalMinutes int             `json:"slot_interval_minutes" validate:"required,gt=0"`
	SearchLimitDays     int             `json:"search_limit_days" validate:"omitempty,gt=0"`
	Windows             []TimeWindowDTO `json:"windows" validate:"required,min=1,dive"`
	BusySlots           []BusySlotDTO   `json:"busy_slots" validate:"omitempty,dive"`
	Calendar            *CalendarDTO    `json:"calendar"`
}

// ListSlots asks for every conflict-free slot inside a fixed period.
type ListSlots struct {
	PeriodStart         string          `json:"period_start" validate:"required"`
	PeriodEnd           string          `json:"period_end" validate:"required"`
	SlotDurationMinutes int             `json:"slot_duration_minutes" validate:"required,gt=0"`
	SlotIntervalMinutes int             `json:"slot_interval_minutes" validate:"omitempty,gt=0"`
	MaxSlots            int             `json:"max_slots" validate:"omitempty,gt=0"`
	Windows             []TimeWindowDTO `json:"windows" validate:"required,min=1,dive"`
	BusySlots           []BusySlotDTO   `json:"busy_slots" validate:"omitempty,dive"`
	Calendar            *CalendarDTO    `json:"calendar"`
}
