package constvars

const (
	ResponseSuccessIssueToken       = "Successfully issued access token"
	ResponseSuccessFindNextSlot     = "Successfully searched for the next available slot"
	ResponseSuccessListSlots        = "Successfully listed available slots"
	ResponseSuccessWorkingDays      = "Successfully listed working days"
	ResponseSuccessNavigateDay      = "Successfully resolved working day"
	ResponseHealthOK                = "ok"
)
