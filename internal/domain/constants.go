package domain

// Default booking rules (used when neither the field nor config.toml override them)
const (
	DefaultSlotStepMinutes         = 60
	DefaultDurationMinutes         = 60
	DefaultAdvanceBookingDays      = 30 // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 0
	DefaultLateDiscountPercent     = 20
)

// Business validation constants
const (
	MinSlotStepMinutes      = 15
	MaxSlotStepMinutes      = 120
	MinAdvanceBookingDays   = 0
	MaxAdvanceBookingDays   = 365
	MinBookingNoticeMinutes = 0
	MaxBookingNoticeMinutes = 1440
	MaxLateDiscountPercent  = 100
	MaxNameLength           = 200
	MaxNotesLength          = 500
	MaxBlockedReasonLength  = 500
	MaxRevenueRangeDays     = 366
	DaysInWeek              = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedDurations допустимые длительности бронирования в минутах (1h, 1h30, 2h)
var AllowedDurations = []int{60, 90, 120}

// IsAllowedDuration проверяет, что длительность бронирования допустима
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
