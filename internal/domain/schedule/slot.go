package schedule

// Business hours for the salon floor. The slot grid always spans the
// full window regardless of any individual stylist's schedule; the
// resolver marks out-of-schedule slots unavailable instead of
// shrinking the grid.
const (
	OpenHour    = 9
	CloseHour   = 21
	SlotMinutes = 15

	SlotsPerDay = (CloseHour - OpenHour) * 60 / SlotMinutes
)

// TimeSlot is one 15-minute cell of the day grid. Derived, never
// persisted.
type TimeSlot struct {
	Time        string `json:"time"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Available   bool   `json:"available"`
	Selected    bool   `json:"selected"`
}

// Generate builds the day's slot grid. The grid is deterministic:
// calling it again yields the identical sequence, with Selected set
// only on the slot whose label matches selectedTime.
func Generate(selectedTime string) []TimeSlot {
	slots := make([]TimeSlot, 0, SlotsPerDay)

	for hour := OpenHour; hour < CloseHour; hour++ {
		for minute := 0; minute < 60; minute += SlotMinutes {
			start := hour*60 + minute
			label := ClockLabel(start)

			slots = append(slots, TimeSlot{
				Time:        label,
				StartMinute: start,
				EndMinute:   start + SlotMinutes,
				Available:   true,
				Selected:    label == selectedTime,
			})
		}
	}

	return slots
}

// SlotIndex locates a slot by its label, -1 when absent.
func SlotIndex(slots []TimeSlot, label string) int {
	for i, s := range slots {
		if s.Time == label {
			return i
		}
	}
	return -1
}

// SlotIndexByMinute locates the slot starting at the given minute.
func SlotIndexByMinute(slots []TimeSlot, startMinute int) int {
	for i, s := range slots {
		if s.StartMinute == startMinute {
			return i
		}
	}
	return -1
}
