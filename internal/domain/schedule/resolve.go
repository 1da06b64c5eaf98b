package schedule

// DefaultBookingMinutes is assumed for historical bookings persisted
// without a duration snapshot. Sixty minutes errs on the side of
// blocking time rather than double-booking it.
const DefaultBookingMinutes = 60

// Window is a stylist's working window on a given weekday, in minutes
// since midnight.
type Window struct {
	StartMinute int
	EndMinute   int
}

// Interval is the occupied span of an existing booking, half-open
// [StartMinute, EndMinute).
type Interval struct {
	StartMinute int
	EndMinute   int
}

// Overlaps reports whether two half-open intervals intersect. Strict
// inequality on both sides: a booking ending exactly when another
// starts does not conflict, so back-to-back appointments are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Resolve stamps availability on every slot of the grid for an
// appointment of serviceMinutes starting at that slot:
//
//  1. the whole appointment must fit inside one working window, and
//  2. it must not overlap any occupied interval.
//
// It returns the stamped slots and whether none of them are
// available.
func Resolve(slots []TimeSlot, windows []Window, busy []Interval, serviceMinutes int) ([]TimeSlot, bool) {
	available := 0

	for i := range slots {
		start := slots[i].StartMinute
		end := start + serviceMinutes

		slots[i].Available = fitsWindow(start, end, windows) && !overlapsAny(start, end, busy)
		if slots[i].Available {
			available++
		}
	}

	return slots, available == 0
}

func fitsWindow(start, end int, windows []Window) bool {
	for _, w := range windows {
		if start >= w.StartMinute && end <= w.EndMinute {
			return true
		}
	}
	return false
}

func overlapsAny(start, end int, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.StartMinute, b.EndMinute) {
			return true
		}
	}
	return false
}

// RequiredSlots is how many consecutive grid cells an appointment of
// the given duration spans.
func RequiredSlots(serviceMinutes int) int {
	return (serviceMinutes + SlotMinutes - 1) / SlotMinutes
}

// FitsAt verifies the consecutive-slot requirement for a chosen start
// slot: every one of the RequiredSlots cells from startIdx must exist
// and be individually available. An available start slot alone does
// not guarantee the service fits.
func FitsAt(slots []TimeSlot, startIdx, serviceMinutes int) bool {
	if startIdx < 0 {
		return false
	}

	required := RequiredSlots(serviceMinutes)
	for i := 0; i < required; i++ {
		if startIdx+i >= len(slots) || !slots[startIdx+i].Available {
			return false
		}
	}

	return true
}
