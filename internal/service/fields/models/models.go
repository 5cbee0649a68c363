package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// Request модели

// SearchRequest запрос поиска полей
type SearchRequest struct {
	City  string  `json:"city"`
	Sport *string `json:"sport,omitempty"`
}

// BlockRequest запрос на блокировку/разблокировку поля или корта
type BlockRequest struct {
	UserID       uuid.UUID `json:"-"`
	IsBlocked    bool      `json:"isBlocked"`
	Reason       *string   `json:"reason,omitempty"`
	BlockedUntil *string   `json:"blockedUntil,omitempty"` // "2025-10-15", пусто - бессрочно
}

// ToDomainBlock конвертирует запрос в domain.Block.
// Разблокировка всегда сбрасывает причину и дату.
func (r *BlockRequest) ToDomainBlock() (domain.Block, error) {
	if !r.IsBlocked {
		return domain.Block{}, nil
	}

	block := domain.Block{IsBlocked: true, Reason: r.Reason}
	if r.Reason != nil && len([]rune(*r.Reason)) > domain.MaxBlockedReasonLength {
		return domain.Block{}, fmt.Errorf("reason must be at most %d characters", domain.MaxBlockedReasonLength)
	}
	if r.BlockedUntil != nil && *r.BlockedUntil != "" {
		until, err := time.Parse(domain.DateFormat, *r.BlockedUntil)
		if err != nil {
			return domain.Block{}, fmt.Errorf("blockedUntil must be YYYY-MM-DD: %v", err)
		}
		block.BlockedUntil = &until
	}

	return block, nil
}

// Response модели

// BlockResponse состояние блокировки
type BlockResponse struct {
	IsBlocked    bool    `json:"isBlocked"`
	Reason       *string `json:"reason,omitempty"`
	BlockedUntil *string `json:"blockedUntil,omitempty"`
}

// FieldResponse ответ с данными поля
type FieldResponse struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Sport        string        `json:"sport"`
	Surface      *string       `json:"surface,omitempty"`
	PricePerHour float64       `json:"pricePerHour"`
	Location     string        `json:"location"`
	City         string        `json:"city"`
	ImageURL     *string       `json:"imageUrl,omitempty"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	OpeningTime  string        `json:"openingTime"` // "08:00"
	ClosingTime  string        `json:"closingTime"` // "23:00"
	Block        BlockResponse `json:"block"`
}

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Block BlockResponse `json:"block"`
}

// AmenityResponse удобство поля
type AmenityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon *string   `json:"icon,omitempty"`
}

// FieldListResponse ответ со списком полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// FieldDetailsResponse поле с кортами и удобствами
type FieldDetailsResponse struct {
	Field     FieldResponse     `json:"field"`
	Courts    []CourtResponse   `json:"courts"`
	Amenities []AmenityResponse `json:"amenities"`
}

// Методы конвертации

// FromDomainBlock конвертирует блокировку в DTO
func FromDomainBlock(b domain.Block) BlockResponse {
	resp := BlockResponse{IsBlocked: b.IsBlocked, Reason: b.Reason}
	if b.BlockedUntil != nil {
		until := b.BlockedUntil.Format(domain.DateFormat)
		resp.BlockedUntil = &until
	}
	return resp
}

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		Name:         f.Name,
		Sport:        f.Sport,
		Surface:      f.Surface,
		PricePerHour: f.PricePerHour,
		Location:     f.Location,
		City:         f.City,
		ImageURL:     f.ImageURL,
		Rating:       f.Rating,
		ReviewCount:  f.ReviewCount,
		OpeningTime:  f.OpeningTime.String(),
		ClosingTime:  f.ClosingTime.String(),
		Block:        FromDomainBlock(f.Block),
	}
}

// FromDomainFieldList конвертирует список полей в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	resp := &FieldListResponse{Fields: make([]FieldResponse, 0, len(fields))}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, FromDomainField(f))
	}
	return resp
}

// FromDomainCourts конвертирует корты в DTO
func FromDomainCourts(courts []*domain.Court) []CourtResponse {
	resp := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		resp = append(resp, CourtResponse{ID: c.ID, Name: c.Name, Block: FromDomainBlock(c.Block)})
	}
	return resp
}

// FromDomainAmenities конвертирует удобства в DTO
func FromDomainAmenities(amenities []*domain.Amenity) []AmenityResponse {
	resp := make([]AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		resp = append(resp, AmenityResponse{ID: a.ID, Name: a.Name, Icon: a.Icon})
	}
	return resp
}
