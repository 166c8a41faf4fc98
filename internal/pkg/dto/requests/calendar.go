package requests

// WorkingDays enumerates the working days between two dates.
type WorkingDays struct {
	Start     string       `json:"start" validate:"required,datetime=2006-01-02"`
	End       string       `json:"end" validate:"required,datetime=2006-01-02"`
	Exclusive bool         `json:"exclusive"`
	Calendar  *CalendarDTO `json:"calendar"`
}

// NavigateWorkingDay finds the working day next to (or before) a date.
type NavigateWorkingDay struct {
	Date      string       `json:"date" validate:"required,datetime=2006-01-02"`
	Direction string       `json:"direction" validate:"required,oneof=next previous"`
	MaxDays   int          `json:"max_days" validate:"omitempty,gt=0"`
	Calendar  *CalendarDTO `json:"calendar"`
}
