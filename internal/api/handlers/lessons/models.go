package lessons

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	createLesson "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_lesson"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

var errInvalidDateFormat = errors.New("invalid date format")

// CreateLessonRequest HTTP request model
type CreateLessonRequest struct {
	TrainerID uuid.UUID        `json:"trainerId"`
	CourtID   *uuid.UUID       `json:"courtId,omitempty"`
	Date      string           `json:"date"` // "2025-10-15"
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Notes     *string          `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateLessonRequest) ToUseCaseRequest(userID, fieldID uuid.UUID) (*createLesson.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDateFormat
	}

	return &createLesson.Request{
		UserID:    userID,
		FieldID:   fieldID,
		TrainerID: r.TrainerID,
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}, nil
}
