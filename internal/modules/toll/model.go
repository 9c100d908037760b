// README: Toll engine errors, time bands and result shapes.
package toll

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tollcalc/internal/modules/vehicle"
	"tollcalc/internal/types"
)

var (
	ErrMissingVehicle     = errors.New("vehicle is required")
	ErrInvalidVehicleType = errors.New("not a known vehicle type")
)

// InvalidVehicleTypeError identifies the value that was rejected. It matches
// ErrInvalidVehicleType under errors.Is.
type InvalidVehicleTypeError struct {
	Value any
}

func (e *InvalidVehicleTypeError) Error() string {
	return fmt.Sprintf("%s: %v (%T)", ErrInvalidVehicleType, e.Value, e.Value)
}

func (e *InvalidVehicleTypeError) Unwrap() error {
	return ErrInvalidVehicleType
}

type TimeBand string

const (
	BandOvernight   TimeBand = "overnight"
	BandMorningRush TimeBand = "morning_rush"
	BandDaytime     TimeBand = "daytime"
	BandEveningRush TimeBand = "evening_rush"
	// BandWeekend is not an hour band; Saturday and Sunday skip hour classification.
	BandWeekend TimeBand = "weekend"
)

type Premium struct {
	Multiplier decimal.Decimal
	Band       TimeBand
	At         time.Time
	Inbound    bool
}

// Quote reports a base fee and a premium side by side. They are not combined.
type Quote struct {
	Kind    vehicle.Kind
	Fee     types.Money
	Premium Premium
}
