package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// CreateTrainerRequest запрос на добавление тренера
type CreateTrainerRequest struct {
	UserID  uuid.UUID `json:"-"`
	FieldID uuid.UUID `json:"-"`
	Name    string    `json:"name"`
	Phone   *string   `json:"phone,omitempty"`
	Email   *string   `json:"email,omitempty"`
	Notes   *string   `json:"notes,omitempty"`
}

// Validate проверяет запрос
func (r *CreateTrainerRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return fmt.Errorf("name must be at most %d characters", domain.MaxNameLength)
	}
	if r.Notes != nil && len([]rune(*r.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("notes must be at most %d characters", domain.MaxNotesLength)
	}
	return nil
}

// ToDomainTrainer конвертирует запрос в domain модель
func (r *CreateTrainerRequest) ToDomainTrainer() *domain.Trainer {
	return &domain.Trainer{
		FieldID: r.FieldID,
		Name:    strings.TrimSpace(r.Name),
		Phone:   r.Phone,
		Email:   r.Email,
		Notes:   r.Notes,
	}
}

// TrainerResponse ответ с данными тренера
type TrainerResponse struct {
	ID        uuid.UUID `json:"id"`
	FieldID   uuid.UUID `json:"fieldId"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrainerListResponse ответ со списком тренеров
type TrainerListResponse struct {
	Trainers []TrainerResponse `json:"trainers"`
}

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:        t.ID,
		FieldID:   t.FieldID,
		Name:      t.Name,
		Phone:     t.Phone,
		Email:     t.Email,
		Notes:     t.Notes,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
	}
}

// FromDomainTrainerList конвертирует список тренеров в DTO
func FromDomainTrainerList(trainers []*domain.Trainer) *TrainerListResponse {
	resp := &TrainerListResponse{Trainers: make([]TrainerResponse, 0, len(trainers))}
	for _, t := range trainers {
		resp.Trainers = append(resp.Trainers, FromDomainTrainer(t))
	}
	return resp
}
