package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	"github.com/m04kA/SMC-FieldBooking/pkg/ptr"
)

const (
	msgInternalError = "eroare internă a serverului"
	maxBodyBytes     = 1 << 20
)

var (
	// ErrEmptyBody возвращается, когда тело запроса пустое
	ErrEmptyBody = errors.New("request body is empty")
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"` // Машиночитаемая причина (конфликты, блокировки)
}

// ConflictResponse тело ответа 409/423 с деталями
type ConflictResponse struct {
	Error        string  `json:"error"`
	Reason       string  `json:"reason"`
	BlockedUntil *string `json:"blockedUntil,omitempty"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent пишет 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError пишет ошибку с сообщением для пользователя
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondConflict пишет 409 с причиной конфликта
func RespondConflict(w http.ResponseWriter, message, reason string) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{Error: message, Reason: reason})
}

// RespondLocked пишет 423 для заблокированного поля
func RespondLocked(w http.ResponseWriter, message string, reason *string, blockedUntil *time.Time) {
	resp := ConflictResponse{Error: message, Reason: "field_blocked"}
	if reason != nil && *reason != "" {
		resp.Error = message + ": " + *reason
	}
	if blockedUntil != nil {
		resp.BlockedUntil = ptr.Ptr(blockedUntil.Format(domain.DateFormat))
	}
	RespondJSON(w, http.StatusLocked, resp)
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// PathUUID извлекает UUID из переменной маршрута
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// QueryString возвращает непустой query параметр или nil
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// QueryDate парсит query параметр в формате YYYY-MM-DD; пустой параметр - ok=false
func QueryDate(r *http.Request, name string) (date time.Time, ok bool, err error) {
	v := QueryString(r, name)
	if v == nil {
		return time.Time{}, false, nil
	}
	date, err = time.Parse(domain.DateFormat, *v)
	if err != nil {
		return time.Time{}, false, err
	}
	return date, true, nil
}
