package responses

// NextSlot reports the first-fit search outcome. Found false with empty
// timestamps means the horizon was exhausted without a conflict-free slot.
type NextSlot struct {
	Found     bool   `json:"found"`
	SlotStart string `json:"slot_start,omitempty"`
	SlotEnd   string `json:"slot_end,omitempty"`
}

type SlotList struct {
	Slots []string `json:"slots"`
	Count int      `json:"count"`
}
