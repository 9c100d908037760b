// README: Vehicle variants accepted by the toll engine.
package vehicle

type Kind string

const (
	KindCar           Kind = "car"
	KindTaxi          Kind = "taxi"
	KindBus           Kind = "bus"
	KindDeliveryTruck Kind = "delivery_truck"
	KindUnknown       Kind = "unknown"
)

// Vehicle is implemented only by the variants in this package.
type Vehicle interface {
	Kind() Kind
	vehicle()
}

type Car struct {
	Passengers int
}

type Taxi struct {
	Fares int
}

type Bus struct {
	Riders   int
	Capacity int
}

type DeliveryTruck struct {
	// GrossWeightClass is in pounds.
	GrossWeightClass int
}

// Unknown carries a value that is present but is none of the known variants.
type Unknown struct {
	Value any
}

func (Car) Kind() Kind           { return KindCar }
func (Taxi) Kind() Kind          { return KindTaxi }
func (Bus) Kind() Kind           { return KindBus }
func (DeliveryTruck) Kind() Kind { return KindDeliveryTruck }
func (Unknown) Kind() Kind       { return KindUnknown }

func (Car) vehicle()           {}
func (Taxi) vehicle()          {}
func (Bus) vehicle()           {}
func (DeliveryTruck) vehicle() {}
func (Unknown) vehicle()       {}

// FromValue maps an arbitrary value onto the variant set. A nil value, or a
// nil pointer to a variant, is absent and yields nil. Pointers to variants
// are dereferenced. Anything else becomes Unknown.
func FromValue(v any) Vehicle {
	switch x := v.(type) {
	case nil:
		return nil
	case Car, Taxi, Bus, DeliveryTruck, Unknown:
		return x.(Vehicle)
	case *Car:
		if x == nil {
			return nil
		}
		return *x
	case *Taxi:
		if x == nil {
			return nil
		}
		return *x
	case *Bus:
		if x == nil {
			return nil
		}
		return *x
	case *DeliveryTruck:
		if x == nil {
			return nil
		}
		return *x
	case *Unknown:
		if x == nil {
			return nil
		}
		return *x
	default:
		return Unknown{Value: v}
	}
}
