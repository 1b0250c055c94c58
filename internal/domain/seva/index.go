package seva

import "strings"

// FlatBooking is a booking paired with its owning seva's identity,
// produced by flattening the per-seva booking lists for a period.
type FlatBooking struct {
	Booking
	SevaID   string
	SevaName string
}

// SevaGroup collects the flattened bookings of one seva.
type SevaGroup struct {
	SevaID   string
	SevaName string
	Bookings []FlatBooking
}

// BookingsOnDay flattens every seva's bookings that fall on the given
// day key. Ordering is the sevas' declaration order, then each seva's
// booking insertion order — never sorted.
// PRE: day is a YYYY-MM-DD day key
// POST: Returns the matching bookings; input is not mutated
func BookingsOnDay(sevas []Seva, day string) []FlatBooking {
	if day == "" {
		return nil
	}
	var out []FlatBooking
	for _, s := range sevas {
		for _, b := range s.Bookings {
			if b.BookingDate == day {
				out = append(out, FlatBooking{Booking: b, SevaID: s.ID, SevaName: s.Name})
			}
		}
	}
	return out
}

// BookingsInMonth flattens every seva's bookings whose date shares the
// given YYYY-MM month key. Ordering matches BookingsOnDay.
// PRE: month is a YYYY-MM month key
// POST: Returns the matching bookings; input is not mutated
func BookingsInMonth(sevas []Seva, month string) []FlatBooking {
	if month == "" {
		return nil
	}
	prefix := month + "-"
	var out []FlatBooking
	for _, s := range sevas {
		for _, b := range s.Bookings {
			if strings.HasPrefix(b.BookingDate, prefix) {
				out = append(out, FlatBooking{Booking: b, SevaID: s.ID, SevaName: s.Name})
			}
		}
	}
	return out
}

// GroupBySeva groups a flattened booking sequence by seva, preserving
// first-seen seva order and per-seva booking order.
// PRE: none
// POST: Returns one group per distinct seva in the input
func GroupBySeva(flat []FlatBooking) []SevaGroup {
	index := make(map[string]int)
	var groups []SevaGroup
	for _, fb := range flat {
		i, ok := index[fb.SevaID]
		if !ok {
			i = len(groups)
			index[fb.SevaID] = i
			groups = append(groups, SevaGroup{SevaID: fb.SevaID, SevaName: fb.SevaName})
		}
		groups[i].Bookings = append(groups[i].Bookings, fb)
	}
	return groups
}
