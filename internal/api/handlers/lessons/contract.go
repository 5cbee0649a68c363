package lessons

import (
	"context"

	"github.com/google/uuid"

	createLesson "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_lesson"
)

type CreateLessonUseCase interface {
	Execute(ctx context.Context, req *createLesson.Request) (*createLesson.Response, error)
}

type LessonService interface {
	Delete(ctx context.Context, userID, lessonID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
