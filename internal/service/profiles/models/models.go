package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// phonePattern номер телефона: цифры, пробелы, дефисы и необязательный "+" в начале
var phonePattern = regexp.MustCompile(`^\+?[0-9 \-]{6,20}$`)

// UpdateProfileRequest запрос на изменение профиля
type UpdateProfileRequest struct {
	UserID   uuid.UUID `json:"-"`
	FullName *string   `json:"fullName"`
	Phone    *string   `json:"phone"`
}

// ToDomainProfile валидирует запрос и конвертирует в domain модель.
// Пустые строки очищают значение.
func (r *UpdateProfileRequest) ToDomainProfile() (*domain.Profile, error) {
	profile := &domain.Profile{ID: r.UserID}

	if r.FullName != nil {
		name := strings.TrimSpace(*r.FullName)
		if len(name) > domain.MaxNameLength {
			return nil, fmt.Errorf("fullName is too long (max %d)", domain.MaxNameLength)
		}
		if name != "" {
			profile.FullName = &name
		}
	}

	if r.Phone != nil {
		phone := strings.TrimSpace(*r.Phone)
		if phone != "" {
			if !phonePattern.MatchString(phone) {
				return nil, fmt.Errorf("invalid phone: %s", phone)
			}
			profile.Phone = &phone
		}
	}

	return profile, nil
}

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  *string   `json:"fullName"`
	Phone     *string   `json:"phone"`
	AvatarURL *string   `json:"avatarUrl"`
	IsAdmin   bool      `json:"isAdmin"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		IsAdmin:   p.IsAdmin,
	}
}
