package domain_test

import (
	"testing"
	"time"

	"github.com/parkgrid/occupancy/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeFee_RoundsUpToTenMinutes(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(65 * time.Minute)

	amount, billedHours, err := domain.ComputeFee(entry, exit, domain.Cents(500))

	assert.NoError(t, err)
	assert.InDelta(t, 7.0/6.0, billedHours, 1e-9)
	assert.Equal(t, domain.Cents(583), amount)
}

func TestComputeFee_ExactHourIsNotRoundedUp(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(1 * time.Hour)

	amount, billedHours, err := domain.ComputeFee(entry, exit, domain.Cents(500))

	assert.NoError(t, err)
	assert.Equal(t, 1.0, billedHours)
	assert.Equal(t, domain.Cents(500), amount)
}

func TestComputeFee_ShortStayBillsOneSlice(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(3 * time.Minute)

	amount, billedHours, err := domain.ComputeFee(entry, exit, domain.Cents(600))

	assert.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, billedHours, 1e-9)
	assert.Equal(t, domain.Cents(100), amount)
}

func TestComputeFee_ZeroDuration(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	_, _, err := domain.ComputeFee(entry, entry, domain.Cents(500))

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestComputeFee_NegativeDuration(t *testing.T) {
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(-10 * time.Minute)

	_, _, err := domain.ComputeFee(entry, exit, domain.Cents(500))

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}
