// Package tariff turns a parking stay into a cost.
//
// Cost is ceil(elapsed in hours) * hourly rate of the category. Any started hour is
// billed in full. Rates are policy input and live in configuration.
package tariff

import (
	"errors"
	"time"

	"parking_service/internal/domain/entities"
)

var ErrNegativeElapsed = errors.New("elapsed duration must not be negative")

// Rates maps a category to its hourly rate in minor currency units.
type Rates map[entities.Category]int64

// DefaultRates are the rates the lot shipped with.
var DefaultRates = Rates{
	entities.CategoryCar:        4000,
	entities.CategoryMotorcycle: 2000,
	entities.CategoryBicycle:    1000,
}

type Policy struct {
	Rates Rates
	// MinimumBilledHours is applied to every stay, including a zero-length one.
	// Zero keeps ceil(0) = 0, so an instant entry/exit pair is free.
	MinimumBilledHours int64
}

type Calculator struct {
	rates    Rates
	fallback int64
	minHours int64
}

func NewCalculator(p Policy) *Calculator {
	rates := p.Rates
	if len(rates) == 0 {
		rates = DefaultRates
	}
	var highest int64
	for _, r := range rates {
		if r > highest {
			highest = r
		}
	}
	minHours := p.MinimumBilledHours
	if minHours < 0 {
		minHours = 0
	}
	return &Calculator{rates: rates, fallback: highest, minHours: minHours}
}

// Rate returns the hourly rate for the category. Unknown categories pay the
// highest rate in the table.
func (c *Calculator) Rate(category entities.Category) int64 {
	if r, ok := c.rates[category]; ok {
		return r
	}
	return c.fallback
}

// BilledHours rounds elapsed up to whole hours.
func (c *Calculator) BilledHours(elapsed time.Duration) (int64, error) {
	if elapsed < 0 {
		return 0, ErrNegativeElapsed
	}
	hours := int64(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	if hours < c.minHours {
		hours = c.minHours
	}
	return hours, nil
}

func (c *Calculator) Cost(elapsed time.Duration, category entities.Category) (int64, error) {
	hours, err := c.BilledHours(elapsed)
	if err != nil {
		return 0, err
	}
	return hours * c.Rate(category), nil
}
