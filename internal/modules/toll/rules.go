// README: Fee and premium rule tables.
package toll

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"tollcalc/internal/modules/vehicle"
	"tollcalc/internal/types"
)

var (
	busLowOccupancy  = big.NewRat(1, 2)
	busHighOccupancy = big.NewRat(9, 10)
)

const (
	truckHeavyPounds = 5000
	truckLightPounds = 3000
)

type premiumRate struct {
	inbound  decimal.Decimal
	outbound decimal.Decimal
}

var premiumRates = map[TimeBand]premiumRate{
	BandWeekend:     {inbound: decimal.New(100, -2), outbound: decimal.New(100, -2)},
	BandOvernight:   {inbound: decimal.New(75, -2), outbound: decimal.New(75, -2)},
	BandMorningRush: {inbound: decimal.New(200, -2), outbound: decimal.New(100, -2)},
	BandDaytime:     {inbound: decimal.New(150, -2), outbound: decimal.New(150, -2)},
	BandEveningRush: {inbound: decimal.New(100, -2), outbound: decimal.New(200, -2)},
}

// ComputeBaseToll returns the fee for a vehicle. A nil vehicle fails with
// ErrMissingVehicle; anything outside the variant set fails with an
// *InvalidVehicleTypeError.
func ComputeBaseToll(v vehicle.Vehicle) (types.Money, error) {
	switch x := vehicle.FromValue(v).(type) {
	case nil:
		return types.Money{}, ErrMissingVehicle
	case vehicle.Car:
		return carToll(x), nil
	case vehicle.Taxi:
		return taxiToll(x), nil
	case vehicle.Bus:
		return busToll(x), nil
	case vehicle.DeliveryTruck:
		return truckToll(x), nil
	case vehicle.Unknown:
		return types.Money{}, &InvalidVehicleTypeError{Value: x.Value}
	default:
		// FromValue folds every other shape into Unknown and Vehicle is
		// sealed; kept so a new variant fails closed until it has a rule.
		return types.Money{}, &InvalidVehicleTypeError{Value: x}
	}
}

func carToll(c vehicle.Car) types.Money {
	switch c.Passengers {
	case 0:
		return types.Cents(250)
	case 1:
		return types.Cents(200)
	case 2:
		return types.Cents(150)
	default:
		return types.Cents(100)
	}
}

func taxiToll(t vehicle.Taxi) types.Money {
	switch t.Fares {
	case 0:
		return types.Cents(400)
	case 1:
		return types.Cents(350)
	case 2:
		return types.Cents(300)
	default:
		return types.Cents(250)
	}
}

func busToll(b vehicle.Bus) types.Money {
	switch occupancy(b) {
	case -1:
		return types.Cents(700)
	case 1:
		return types.Cents(600)
	default:
		return types.Cents(500)
	}
}

// occupancy is -1 below the low band, 1 above the high band, 0 otherwise.
// Both comparisons are strict, so 0.50 and 0.90 exactly land on 0.
func occupancy(b vehicle.Bus) int {
	if b.Capacity == 0 {
		// riders/0 diverges with the sign of riders; 0/0 matches no band
		switch {
		case b.Riders < 0:
			return -1
		case b.Riders > 0:
			return 1
		default:
			return 0
		}
	}
	ratio := big.NewRat(int64(b.Riders), int64(b.Capacity))
	switch {
	case ratio.Cmp(busLowOccupancy) < 0:
		return -1
	case ratio.Cmp(busHighOccupancy) > 0:
		return 1
	default:
		return 0
	}
}

func truckToll(t vehicle.DeliveryTruck) types.Money {
	switch {
	case t.GrossWeightClass > truckHeavyPounds:
		return types.Cents(1500)
	case t.GrossWeightClass < truckLightPounds:
		return types.Cents(800)
	default:
		return types.Cents(1000)
	}
}

// ClassifyHour maps an hour of day (0-23) to its weekday band.
func ClassifyHour(hour int) TimeBand {
	switch {
	case hour < 6 || hour > 19:
		return BandOvernight
	case hour < 10:
		return BandMorningRush
	case hour < 16:
		return BandDaytime
	default:
		return BandEveningRush
	}
}

// ClassifyTime reads the weekday and hour in t's own location.
func ClassifyTime(t time.Time) TimeBand {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return BandWeekend
	}
	return ClassifyHour(t.Hour())
}

func ComputePeakPremium(at time.Time, inbound bool) decimal.Decimal {
	rate := premiumRates[ClassifyTime(at)]
	if inbound {
		return rate.inbound
	}
	return rate.outbound
}
