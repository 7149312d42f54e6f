package client

import (
	"slices"

	availability "github.com/savioruz/reserva/internal/domains/availability/dto"
	"github.com/savioruz/reserva/pkg/timeslot"
)

// Selection is the set of slots a user intends to book. Slots on the same resource never overlap.
// It only guards the user from obvious mistakes; the server decides what is actually free.
type Selection struct {
	slots []availability.SlotRequest
}

// Toggle removes slot when it is already selected. Otherwise it adds slot and drops any selected
// slot on the same resource that overlaps it. The result reports whether slot ends up selected.
func (s *Selection) Toggle(slot availability.SlotRequest) (bool, error) {
	r, err := timeslot.Parse(slot.StartTime, slot.EndTime)
	if err != nil {
		return false, err
	}

	if i := slices.Index(s.slots, slot); i >= 0 {
		s.slots = slices.Delete(s.slots, i, i+1)

		return false, nil
	}

	s.slots = slices.DeleteFunc(s.slots, func(existing availability.SlotRequest) bool {
		if existing.SanID != slot.SanID {
			return false
		}

		other, err := timeslot.Parse(existing.StartTime, existing.EndTime)

		return err == nil && r.Overlaps(other)
	})

	s.slots = append(s.slots, slot)

	return true, nil
}

func (s *Selection) Slots() []availability.SlotRequest {
	return slices.Clone(s.slots)
}

func (s *Selection) Len() int {
	return len(s.slots)
}

func (s *Selection) Clear() {
	s.slots = nil
}
