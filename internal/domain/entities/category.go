package entities

import (
	"errors"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown vehicle category")

// Category is the vehicle class. It decides which spaces a vehicle may use and
// which hourly rate applies.
type Category string

const (
	CategoryCar        Category = "car"
	CategoryMotorcycle Category = "motorcycle"
	CategoryBicycle    Category = "bicycle"
)

// Categories lists every valid category in report order.
var Categories = []Category{CategoryCar, CategoryMotorcycle, CategoryBicycle}

// ParseCategory is the single validation point for categories coming from the
// outside world. Input is trimmed and lowercased.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCar, CategoryMotorcycle, CategoryBicycle:
		return true
	}
	return false
}
