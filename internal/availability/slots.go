package availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// CourtAvailability доступность одного корта в слоте
type CourtAvailability struct {
	CourtID   uuid.UUID
	Name      string
	Available bool
	Reason    Reason // пусто, если корт свободен
	Label     string
}

// SlotAvailability слот сетки расписания
type SlotAvailability struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool
	Courts    []CourtAvailability // пусто для поля без кортов
	Reason    Reason              // для поля без кортов
	Label     string
}

// Slots строит сетку слотов длительностью duration с шагом step от открытия до закрытия поля.
// Слоты, начинающиеся раньше notBefore (сегодня с учетом минимального времени до начала), пропускаются.
// Слот доступен, если свободен хотя бы один корт (или само поле, если кортов нет).
func (d *Day) Slots(step, duration int, notBefore *types.TimeString) []SlotAvailability {
	slots := make([]SlotAvailability, 0)
	if step <= 0 || duration <= 0 {
		return slots
	}

	for m := d.Field.OpeningTime.Minutes(); m+duration <= d.Field.ClosingTime.Minutes(); m += step {
		start, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		end, err := start.AddMinutes(duration)
		if err != nil {
			break
		}
		if notBefore != nil && start.IsBefore(*notBefore) {
			continue
		}

		slots = append(slots, d.slot(start, end))
	}

	return slots
}

func (d *Day) slot(start, end types.TimeString) SlotAvailability {
	slot := SlotAvailability{Start: start, End: end}

	if !d.HasCourts() {
		if conflict := d.Check(nil, start, end); conflict != nil {
			slot.Reason = conflict.Reason
			slot.Label = conflict.Message
			return slot
		}
		slot.Available = true
		return slot
	}

	slot.Courts = make([]CourtAvailability, 0, len(d.Courts))
	for _, c := range d.Courts {
		id := c.ID
		ca := CourtAvailability{CourtID: c.ID, Name: c.Name, Available: true}
		if conflict := d.Check(&id, start, end); conflict != nil {
			ca.Available = false
			ca.Reason = conflict.Reason
			ca.Label = conflict.Message
		} else {
			slot.Available = true
		}
		slot.Courts = append(slot.Courts, ca)
	}

	return slot
}
