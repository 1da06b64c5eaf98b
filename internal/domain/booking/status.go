package booking

// Status lifecycle:
//
//	pending --confirm--> confirmed
//	pending|confirmed --cancel--> canceled   (soft, row retained)
//	pending|confirmed --complete--> completed
//
// No transition leaves canceled or completed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func InitialStatus() Status {
	return StatusPending
}

// Occupies reports whether a booking in this status still blocks its
// time slot. Canceled rows are the only ones that free the slot.
func (s Status) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// OccupyingStatuses are the statuses consulted for overlap checks.
func OccupyingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted}
}
