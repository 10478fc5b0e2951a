package repository

import (
	"math"

	"github.com/za-dev/roomfinder-service/internal/model"
)

// Price of a stay over [start, end]: the nightly rate grows with the
// length of the stay, (nights+100)/12 per night, unrounded.
func Price(start, end model.Date) float64 {
	nights := float64(start.DaysUntil(end))
	return nights * (nights + 100) / 12.0
}

// PercentageFee is the tier table shared by cancellation refunds and
// reschedule fees, keyed by a day distance.
func PercentageFee(numDays int) float64 {
	switch {
	case numDays >= 14:
		return 1.0
	case numDays >= 7:
		return 0.5
	case numDays >= 3:
		return 0.25
	default:
		return 0.0
	}
}

// RefundAmount for cancelling a booking today; the tier is keyed by
// how many days remain until the stay starts.
func RefundAmount(room model.BookedRoom) float64 {
	numDays := model.Today().DaysUntil(room.StartDate)
	return round2(PercentageFee(numDays) * room.Price)
}

// RescheduleFee for moving a booking today; the tier is keyed by how
// many days ago the booking was made.
func RescheduleFee(room model.BookedRoom) float64 {
	numDays := room.BookedOn.DaysUntil(model.Today())
	if numDays < 0 {
		numDays = -numDays
	}
	return round2(PercentageFee(numDays) * room.Price)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
