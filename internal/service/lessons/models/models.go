package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// LessonResponse ответ с данными урока
type LessonResponse struct {
	ID              uuid.UUID  `json:"id"`
	FieldID         uuid.UUID  `json:"fieldId"`
	CourtID         *uuid.UUID `json:"courtId,omitempty"`
	TrainerID       uuid.UUID  `json:"trainerId"`
	TrainerName     string     `json:"trainerName"`
	TrainerPhone    *string    `json:"trainerPhone,omitempty"`
	LessonDate      string     `json:"lessonDate"` // "2025-10-15"
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Notes           *string    `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// FromDomainLesson конвертирует domain модель в DTO
func FromDomainLesson(l *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:              l.ID,
		FieldID:         l.FieldID,
		CourtID:         l.CourtID,
		TrainerID:       l.TrainerID,
		TrainerName:     l.TrainerName,
		TrainerPhone:    l.TrainerPhone,
		LessonDate:      l.LessonDate.Format(domain.DateFormat),
		StartTime:       l.StartTime.String(),
		EndTime:         l.EndTime.String(),
		DurationMinutes: l.DurationMinutes,
		Notes:           l.Notes,
		CreatedAt:       l.CreatedAt,
	}
}

// FromDomainLessons конвертирует список уроков
func FromDomainLessons(lessons []*domain.Lesson) []LessonResponse {
	resp := make([]LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		resp = append(resp, FromDomainLesson(l))
	}
	return resp
}
