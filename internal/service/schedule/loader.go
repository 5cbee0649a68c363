package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/availability"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
)

// Schedule расписание поля на дату вместе с исходными записями
type Schedule struct {
	Day         *availability.Day
	Bookings    []*domain.Booking
	Lessons     []*domain.Lesson
	Memberships []*domain.Membership
}

// Loader собирает availability.Day из репозиториев.
// Единственная точка, где строится занятость: ею пользуются и чтение сетки, и запись.
type Loader struct {
	fieldRepo      FieldRepository
	bookingRepo    BookingRepository
	lessonRepo     LessonRepository
	membershipRepo MembershipRepository
}

// NewLoader создает загрузчик расписания
func NewLoader(
	fieldRepo FieldRepository,
	bookingRepo BookingRepository,
	lessonRepo LessonRepository,
	membershipRepo MembershipRepository,
) *Loader {
	return &Loader{
		fieldRepo:      fieldRepo,
		bookingRepo:    bookingRepo,
		lessonRepo:     lessonRepo,
		membershipRepo: membershipRepo,
	}
}

// Load читает поле, активные корты и всю занятость на дату.
// Внутри транзакции репозитории блокируют прочитанные строки.
func (l *Loader) Load(ctx context.Context, fieldID uuid.UUID, date time.Time) (*Schedule, error) {
	date = domain.DateOnly(date)

	field, err := l.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, fmt.Errorf("%w: get field: %w", ErrInternal, err)
	}

	courts, err := l.fieldRepo.ListCourts(ctx, fieldID, true)
	if err != nil {
		return nil, fmt.Errorf("%w: list courts: %w", ErrInternal, err)
	}

	bookings, err := l.bookingRepo.GetByFieldWithFilter(ctx, domain.FieldBookingsFilter{
		FieldID:   fieldID,
		StartDate: &date,
		EndDate:   &date,
		Statuses:  domain.OccupyingStatuses,
	})
	if err != nil {
		// %w дважды: ошибка сериализации должна дойти до txmanager
		return nil, fmt.Errorf("%w: get bookings: %w", ErrInternal, err)
	}

	lessons, err := l.lessonRepo.GetByFieldAndDate(ctx, fieldID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: get lessons: %w", ErrInternal, err)
	}

	memberships, err := l.membershipRepo.ListActiveOn(ctx, fieldID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: get memberships: %w", ErrInternal, err)
	}

	day := availability.NewDay(field, courts, date)
	day.Add(availability.FromBookings(bookings)...)
	day.Add(availability.FromLessons(lessons)...)
	day.Add(availability.FromMemberships(memberships, date)...)

	return &Schedule{
		Day:         day,
		Bookings:    bookings,
		Lessons:     lessons,
		Memberships: memberships,
	}, nil
}
