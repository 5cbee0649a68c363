package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва по завершенному бронированию
type CreateReviewRequest struct {
	UserID    uuid.UUID `json:"-"`
	FieldID   uuid.UUID `json:"-"`
	BookingID uuid.UUID `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
}

// ToDomainReview валидирует запрос и конвертирует в domain модель
func (r *CreateReviewRequest) ToDomainReview() (*domain.Review, error) {
	if r.BookingID == uuid.Nil {
		return nil, fmt.Errorf("bookingId is required")
	}
	if r.Rating < domain.MinReviewRating || r.Rating > domain.MaxReviewRating {
		return nil, fmt.Errorf("rating must be between %d and %d", domain.MinReviewRating, domain.MaxReviewRating)
	}

	review := &domain.Review{
		FieldID:   r.FieldID,
		UserID:    r.UserID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
	}

	if r.Comment != nil {
		comment := strings.TrimSpace(*r.Comment)
		if len(comment) > domain.MaxReviewCommentLength {
			return nil, fmt.Errorf("comment is too long (max %d)", domain.MaxReviewCommentLength)
		}
		if comment != "" {
			review.Comment = &comment
		}
	}

	return review, nil
}

// ReviewResponse отзыв о поле
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	FieldID    uuid.UUID `json:"fieldId"`
	BookingID  uuid.UUID `json:"bookingId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	AuthorName *string   `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse список отзывов с общим рейтингом
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Average float64          `json:"average"`
	Count   int              `json:"count"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		FieldID:    r.FieldID,
		BookingID:  r.BookingID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов и статистику в DTO
func FromDomainReviewList(reviews []*domain.Review, stats domain.ReviewStats) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
		Average: domain.RoundMoney(stats.Average),
		Count:   stats.Count,
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, FromDomainReview(r))
	}
	return resp
}
