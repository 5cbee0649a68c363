package availability

import "fmt"

// Reason причина, по которой интервал нельзя занять
type Reason string

const (
	ReasonInvalidRange        Reason = "invalid_range"
	ReasonFieldBlocked        Reason = "field_blocked"
	ReasonOutsideOpeningHours Reason = "outside_opening_hours"
	ReasonUnknownCourt        Reason = "unknown_court"
	ReasonCourtBlocked        Reason = "court_blocked"
	ReasonBooking             Reason = "booking"
	ReasonLesson              Reason = "lesson"
	ReasonMembership          Reason = "membership"
)

// Conflict результат неуспешной проверки интервала
type Conflict struct {
	Reason    Reason
	Occupancy *Occupancy // заполняется для booking, lesson, membership
	Message   string     // сообщение для пользователя
}

func (c *Conflict) Error() string {
	if c.Occupancy != nil {
		return fmt.Sprintf("availability: %s conflict with %s %s-%s",
			c.Reason, c.Occupancy.ID, c.Occupancy.Start, c.Occupancy.End)
	}
	return fmt.Sprintf("availability: %s", c.Reason)
}

func reasonFor(kind Kind) Reason {
	switch kind {
	case KindLesson:
		return ReasonLesson
	case KindMembership:
		return ReasonMembership
	default:
		return ReasonBooking
	}
}

func occupancyMessage(o *Occupancy) string {
	switch o.Kind {
	case KindBooking:
		return fmt.Sprintf("Intervalul %s-%s este deja rezervat", o.Start, o.End)
	default:
		return fmt.Sprintf("%s (%s-%s)", o.Label, o.Start, o.End)
	}
}
