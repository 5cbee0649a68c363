package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Kind тип занятости корта
type Kind string

const (
	KindBooking    Kind = "booking"
	KindLesson     Kind = "lesson"
	KindMembership Kind = "membership"
)

// Occupancy интервал, занятый на корте в конкретную дату.
// CourtID == nil - занято всё поле (все корты).
type Occupancy struct {
	Kind    Kind
	ID      uuid.UUID
	CourtID *uuid.UUID
	Start   types.TimeString
	End     types.TimeString
	Label   string
}

// Covers проверяет, относится ли занятость к запрошенному корту.
// courtID == nil означает запрос без корта (поле без кортов): конфликтует с любой занятостью.
func (o Occupancy) Covers(courtID *uuid.UUID) bool {
	if o.CourtID == nil || courtID == nil {
		return true
	}
	return *o.CourtID == *courtID
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Соприкасающиеся интервалы (10:00-11:00 и 11:00-12:00) не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

const bookingLabel = "Rezervare"

// FromBookings строит занятость по бронированиям. Отмененные бронирования время не занимают.
func FromBookings(bookings []*domain.Booking) []Occupancy {
	result := make([]Occupancy, 0, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesTime() {
			continue
		}
		label := bookingLabel
		if b.CustomerName != nil && *b.CustomerName != "" {
			label = bookingLabel + ": " + *b.CustomerName
		}
		result = append(result, Occupancy{
			Kind:    KindBooking,
			ID:      b.ID,
			CourtID: b.CourtID,
			Start:   b.StartTime,
			End:     b.EndTime,
			Label:   label,
		})
	}
	return result
}

// FromLessons строит занятость по урокам
func FromLessons(lessons []*domain.Lesson) []Occupancy {
	result := make([]Occupancy, 0, len(lessons))
	for _, l := range lessons {
		result = append(result, Occupancy{
			Kind:    KindLesson,
			ID:      l.ID,
			CourtID: l.CourtID,
			Start:   l.StartTime,
			End:     l.EndTime,
			Label:   "Lecție: " + l.TrainerName,
		})
	}
	return result
}

// FromMemberships строит занятость по абонементам, действующим в указанную дату
func FromMemberships(memberships []*domain.Membership, date time.Time) []Occupancy {
	result := make([]Occupancy, 0, len(memberships))
	for _, m := range memberships {
		if !m.AppliesOn(date) {
			continue
		}
		result = append(result, Occupancy{
			Kind:    KindMembership,
			ID:      m.ID,
			CourtID: m.CourtID,
			Start:   m.StartTime,
			End:     m.EndTime,
			Label:   "Abonament: " + m.MemberName,
		})
	}
	return result
}
