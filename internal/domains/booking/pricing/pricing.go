// Package pricing computes booking totals from catalog rates. The server is
// the only authority on amounts; figures submitted by clients are ignored.
package pricing

import (
	"time"

	"royalpalace/internal/domains/booking/model"
	"royalpalace/shared/failure"
)

// Quote is the nightly breakdown behind a booking total.
type Quote struct {
	Nights        int
	NightlyRate   float64
	ExtraBedTotal float64
	Total         float64
}

// Calculate prices a stay. Nights are whole days between the two dates;
// checkout must fall strictly after checkin. A DOUBLE occupancy uses the
// double rate when the room type carries one and falls back to the single
// rate otherwise. The extra bed charge applies per night.
func Calculate(checkIn, checkOut time.Time, singleRate float64, doubleRate *float64, occupancy string, extraBed bool, extraBedCharge float64) (Quote, error) {
	nights := wholeDays(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	rate := singleRate
	if occupancy == model.OccupancyDouble && doubleRate != nil {
		rate = *doubleRate
	}

	quote := Quote{
		Nights:      nights,
		NightlyRate: rate,
		Total:       rate * float64(nights),
	}

	if extraBed {
		quote.ExtraBedTotal = extraBedCharge * float64(nights)
		quote.Total += quote.ExtraBedTotal
	}

	return quote, nil
}

func wholeDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}
