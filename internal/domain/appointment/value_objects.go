package appointment

import (
	"errors"
	"strings"
	"time"
)

const maxDescriptionLength = 2000

// VehicleSnapshot is copied from the vehicle registry at booking time and
// never live-linked afterwards.
type VehicleSnapshot struct {
	make  string
	model string
	year  int
	plate string
}

func NewVehicleSnapshot(make, model string, year int, plate string) (VehicleSnapshot, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	plate = strings.TrimSpace(plate)
	if make == "" || model == "" {
		return VehicleSnapshot{}, errors.New("vehicle make and model are required")
	}
	if year < 1900 || year > time.Now().Year()+1 {
		return VehicleSnapshot{}, errors.New("vehicle year out of range")
	}
	if plate == "" {
		return VehicleSnapshot{}, errors.New("vehicle plate is required")
	}
	return VehicleSnapshot{make: make, model: model, year: year, plate: plate}, nil
}

func ReconstructVehicleSnapshot(make, model string, year int, plate string) VehicleSnapshot {
	return VehicleSnapshot{make: make, model: model, year: year, plate: plate}
}

func (v VehicleSnapshot) Make() string  { return v.make }
func (v VehicleSnapshot) Model() string { return v.model }
func (v VehicleSnapshot) Year() int     { return v.year }
func (v VehicleSnapshot) Plate() string { return v.plate }

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type Description struct {
	value string
}

func NewDescription(value string) (Description, error) {
	value = strings.TrimSpace(value)
	if len(value) > maxDescriptionLength {
		return Description{}, errors.New("description too long")
	}
	return Description{value: value}, nil
}

func (d Description) String() string {
	return d.value
}

func (d Description) IsEmpty() bool {
	return d.value == ""
}
