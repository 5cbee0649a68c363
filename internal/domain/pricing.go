package domain

import "math"

// CalculatePrice returns price_per_hour * duration / 60 minus discountPercent, rounded to bani
func CalculatePrice(pricePerHour float64, durationMinutes int, discountPercent float64) float64 {
	total := pricePerHour * float64(durationMinutes) / 60
	if discountPercent > 0 {
		total = total * (100 - discountPercent) / 100
	}
	return RoundMoney(total)
}

// RoundMoney rounds an amount to 2 decimals
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
