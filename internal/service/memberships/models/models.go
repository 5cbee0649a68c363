package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// CreateMembershipRequest запрос на создание абонемента
type CreateMembershipRequest struct {
	UserID     uuid.UUID        `json:"-"`
	FieldID    uuid.UUID        `json:"-"`
	CourtID    *uuid.UUID       `json:"courtId,omitempty"`
	MemberName string           `json:"memberName"`
	MemberID   *uuid.UUID       `json:"memberUserId,omitempty"`
	DayOfWeek  int              `json:"dayOfWeek"` // 0 = воскресенье
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	StartDate  string           `json:"startDate"` // "2025-10-01"
	EndDate    string           `json:"endDate"`
	Notes      *string          `json:"notes,omitempty"`
}

// ToDomainMembership проверяет запрос и конвертирует его в domain модель
func (r *CreateMembershipRequest) ToDomainMembership() (*domain.Membership, error) {
	name := strings.TrimSpace(r.MemberName)
	if name == "" {
		return nil, errors.New("memberName is required")
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return nil, fmt.Errorf("memberName must be at most %d characters", domain.MaxNameLength)
	}
	if r.DayOfWeek < 0 || r.DayOfWeek >= domain.DaysInWeek {
		return nil, errors.New("dayOfWeek must be in 0..6")
	}
	if err := r.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("startTime: %v", err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("endTime: %v", err)
	}
	if !r.EndTime.IsAfter(r.StartTime) {
		return nil, errors.New("endTime must be after startTime")
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, errors.New("startDate must be YYYY-MM-DD")
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, errors.New("endDate must be YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, errors.New("endDate must not be before startDate")
	}
	if r.Notes != nil && len([]rune(*r.Notes)) > domain.MaxNotesLength {
		return nil, fmt.Errorf("notes must be at most %d characters", domain.MaxNotesLength)
	}

	return &domain.Membership{
		FieldID:    r.FieldID,
		CourtID:    r.CourtID,
		MemberName: name,
		UserID:     r.MemberID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		StartDate:  startDate,
		EndDate:    endDate,
		Notes:      r.Notes,
		CreatedBy:  r.UserID,
	}, nil
}

// MembershipResponse ответ с данными абонемента
type MembershipResponse struct {
	ID         uuid.UUID  `json:"id"`
	FieldID    uuid.UUID  `json:"fieldId"`
	CourtID    *uuid.UUID `json:"courtId,omitempty"`
	MemberName string     `json:"memberName"`
	MemberID   *uuid.UUID `json:"memberUserId,omitempty"`
	DayOfWeek  int        `json:"dayOfWeek"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MembershipListResponse ответ со списком абонементов
type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
}

// FromDomainMembership конвертирует domain модель в DTO
func FromDomainMembership(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		ID:         m.ID,
		FieldID:    m.FieldID,
		CourtID:    m.CourtID,
		MemberName: m.MemberName,
		MemberID:   m.UserID,
		DayOfWeek:  m.DayOfWeek,
		StartTime:  m.StartTime.String(),
		EndTime:    m.EndTime.String(),
		StartDate:  m.StartDate.Format(domain.DateFormat),
		EndDate:    m.EndDate.Format(domain.DateFormat),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomainMembershipList конвертирует список абонементов в DTO
func FromDomainMembershipList(ms []*domain.Membership) *MembershipListResponse {
	resp := &MembershipListResponse{Memberships: make([]MembershipResponse, 0, len(ms))}
	for _, m := range ms {
		resp.Memberships = append(resp.Memberships, FromDomainMembership(m))
	}
	return resp
}
