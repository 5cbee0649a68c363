package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

// UpdateRulesRequest запрос на изменение правил бронирования поля (полная замена)
type UpdateRulesRequest struct {
	UserID                  uuid.UUID         `json:"-"`
	FieldID                 uuid.UUID         `json:"-"`
	SlotStepMinutes         int               `json:"slotStepMinutes"`
	DefaultDurationMinutes  int               `json:"defaultDurationMinutes"`
	AdvanceBookingDays      int               `json:"advanceBookingDays"`      // 0 = без ограничений
	MinBookingNoticeMinutes int               `json:"minBookingNoticeMinutes"` // Минимальное время до начала
	LateDiscountFrom        *types.TimeString `json:"lateDiscountFrom"`        // null - скидки нет
	LateDiscountPercent     float64           `json:"lateDiscountPercent"`
}

// Validate проверяет диапазоны значений
func (r *UpdateRulesRequest) Validate() error {
	if r.SlotStepMinutes < domain.MinSlotStepMinutes || r.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("slotStepMinutes must be between %d and %d", domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if !domain.IsAllowedDuration(r.DefaultDurationMinutes) {
		return fmt.Errorf("defaultDurationMinutes must be one of %v", domain.AllowedDurations)
	}
	if r.AdvanceBookingDays < domain.MinAdvanceBookingDays || r.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("advanceBookingDays must be between %d and %d", domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	if r.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || r.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("minBookingNoticeMinutes must be between %d and %d", domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}
	if r.LateDiscountPercent < 0 || r.LateDiscountPercent > domain.MaxLateDiscountPercent {
		return fmt.Errorf("lateDiscountPercent must be between 0 and %d", domain.MaxLateDiscountPercent)
	}
	if r.LateDiscountFrom != nil {
		if err := r.LateDiscountFrom.Validate(); err != nil {
			return fmt.Errorf("lateDiscountFrom: %v", err)
		}
	}
	return nil
}

// ToDomainRules конвертирует запрос в domain модель
func (r *UpdateRulesRequest) ToDomainRules() *domain.BookingRules {
	return &domain.BookingRules{
		FieldID:                 r.FieldID,
		SlotStepMinutes:         r.SlotStepMinutes,
		DefaultDurationMinutes:  r.DefaultDurationMinutes,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		LateDiscountFrom:        r.LateDiscountFrom,
		LateDiscountPercent:     r.LateDiscountPercent,
	}
}

// RulesResponse действующие правила бронирования поля
type RulesResponse struct {
	FieldID                 uuid.UUID  `json:"fieldId"`
	SlotStepMinutes         int        `json:"slotStepMinutes"`
	DefaultDurationMinutes  int        `json:"defaultDurationMinutes"`
	AllowedDurations        []int      `json:"allowedDurations"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	LateDiscountFrom        *string    `json:"lateDiscountFrom"`
	LateDiscountPercent     float64    `json:"lateDiscountPercent"`
	IsDefault               bool       `json:"isDefault"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainRules конвертирует domain модель в DTO
func FromDomainRules(r *domain.BookingRules) *RulesResponse {
	resp := &RulesResponse{
		FieldID:                 r.FieldID,
		SlotStepMinutes:         r.SlotStepMinutes,
		DefaultDurationMinutes:  r.DefaultDurationMinutes,
		AllowedDurations:        domain.AllowedDurations,
		AdvanceBookingDays:      r.AdvanceBookingDays,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		LateDiscountPercent:     r.LateDiscountPercent,
		IsDefault:               r.IsDefault,
	}
	if r.LateDiscountFrom != nil {
		resp.LateDiscountFrom = ptr.Ptr(r.LateDiscountFrom.String())
	}
	if !r.IsDefault {
		updatedAt := r.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
