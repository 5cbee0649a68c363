package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// Day расписание поля на одну дату: поле, активные корты и всё, что занимает время
type Day struct {
	Field       *domain.Field
	Courts      []*domain.Court
	Date        time.Time
	Occupancies []Occupancy
}

// NewDay создает расписание без занятости
func NewDay(field *domain.Field, courts []*domain.Court, date time.Time) *Day {
	return &Day{
		Field:  field,
		Courts: courts,
		Date:   domain.DateOnly(date),
	}
}

// Add добавляет занятость. Занятость хранится отсортированной по началу,
// поэтому Check возвращает самый ранний конфликт.
func (d *Day) Add(occupancies ...Occupancy) {
	d.Occupancies = append(d.Occupancies, occupancies...)
	sort.SliceStable(d.Occupancies, func(i, j int) bool {
		return d.Occupancies[i].Start.IsBefore(d.Occupancies[j].Start)
	})
}

// HasCourts возвращает true, если бронирование поля идет по кортам
func (d *Day) HasCourts() bool {
	return len(d.Courts) > 0
}

// Court ищет корт поля по ID
func (d *Day) Court(id uuid.UUID) (*domain.Court, bool) {
	for _, c := range d.Courts {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// FieldBlocked возвращает true, если поле заблокировано на дату расписания
func (d *Day) FieldBlocked() bool {
	return d.Field.Block.ActiveOn(d.Date)
}

// Check проверяет, можно ли занять интервал [start, end) на корте courtID.
// Порядок проверок: корректность интервала, блокировка поля, часы работы,
// корт и его блокировка, пересечение с занятостью. Возвращает nil, если интервал свободен.
func (d *Day) Check(courtID *uuid.UUID, start, end types.TimeString) *Conflict {
	if start.IsZero() || end.IsZero() || !start.IsBefore(end) {
		return &Conflict{Reason: ReasonInvalidRange, Message: "Interval orar invalid"}
	}

	if d.FieldBlocked() {
		return &Conflict{Reason: ReasonFieldBlocked, Message: blockMessage("Baza sportivă este blocată", d.Field.Block)}
	}

	if !d.Field.IsOpenBetween(start, end) {
		return &Conflict{
			Reason:  ReasonOutsideOpeningHours,
			Message: fmt.Sprintf("În afara programului (%s-%s)", d.Field.OpeningTime, d.Field.ClosingTime),
		}
	}

	if courtID != nil {
		court, ok := d.Court(*courtID)
		if !ok {
			return &Conflict{Reason: ReasonUnknownCourt, Message: "Terenul selectat nu există"}
		}
		if court.Block.ActiveOn(d.Date) {
			return &Conflict{Reason: ReasonCourtBlocked, Message: blockMessage("Terenul este blocat", court.Block)}
		}
	}

	for i := range d.Occupancies {
		occ := &d.Occupancies[i]
		if !occ.Covers(courtID) {
			continue
		}
		if Overlaps(start, end, occ.Start, occ.End) {
			return &Conflict{
				Reason:    reasonFor(occ.Kind),
				Occupancy: occ,
				Message:   occupancyMessage(occ),
			}
		}
	}

	return nil
}

// FreeCourts возвращает корты, на которых интервал свободен
func (d *Day) FreeCourts(start, end types.TimeString) []*domain.Court {
	free := make([]*domain.Court, 0, len(d.Courts))
	for _, c := range d.Courts {
		id := c.ID
		if d.Check(&id, start, end) == nil {
			free = append(free, c)
		}
	}
	return free
}

func blockMessage(prefix string, b domain.Block) string {
	msg := prefix
	if b.Reason != nil && *b.Reason != "" {
		msg += ": " + *b.Reason
	}
	if b.BlockedUntil != nil {
		msg += " (până la " + b.BlockedUntil.Format(domain.DateFormat) + ")"
	}
	return msg
}
