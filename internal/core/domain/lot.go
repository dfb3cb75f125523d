package domain

// Cents is a money amount in integer minor units. Billing math never touches
// floating point storage, only the final rounding step.
type Cents int64

type Lot struct {
	ID              int64
	Code            string
	Name            string
	TotalSpaces     int
	AvailableSpaces int
	FeePerHour      Cents
}

func (l *Lot) HasFreeSpace() bool {
	return l.AvailableSpaces > 0
}

type Car struct {
	ID          int64
	PlateNumber string
	OwnerID     int64
}
