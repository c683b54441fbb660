package platform

import "math"

const microsPerCent = 10_000

// ToMicros converts a decimal currency amount to integer micro-units going
// through whole cents, so 0.10 becomes exactly 100000.
func ToMicros(amount float64) int64 {
	return ToCents(amount) * microsPerCent
}

func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromMicros(micros int64) float64 {
	return float64(micros/microsPerCent) / 100
}
