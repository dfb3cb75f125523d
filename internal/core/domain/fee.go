package domain

import (
	"math"
	"time"
)

// Parked time is billed in 10-minute increments: the duration rounds up to
// the next one-sixth of an hour before the hourly rate is applied.
const billingSlicesPerHour = 6

// ComputeFee returns the amount owed for the stay together with the billed
// hours. A zero or negative duration means clock skew or corrupted data and
// is rejected with ErrInvalidDuration.
func ComputeFee(entryTime, exitTime time.Time, feePerHour Cents) (Cents, float64, error) {
	d := exitTime.Sub(entryTime)
	if d <= 0 {
		return 0, 0, ErrInvalidDuration
	}

	billedHours := math.Ceil(d.Hours()*billingSlicesPerHour) / billingSlicesPerHour
	amount := Cents(math.Round(billedHours * float64(feePerHour)))

	return amount, billedHours, nil
}
