package responses

type WorkingDays struct {
	WorkingDays     []string `json:"working_days"`
	Count           int      `json:"count"`
	IsWorkingPeriod bool     `json:"is_working_period"`
}

// NavigateWorkingDay reports a bounded or unbounded day scan. Found false
// means the limit was exhausted before a working day appeared.
type NavigateWorkingDay struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
}
