// README: Wire shape for vehicles received over HTTP.
package vehicle

import "strings"

type Spec struct {
	Kind             string `json:"kind"`
	Passengers       int    `json:"passengers"`
	Fares            int    `json:"fares"`
	Riders           int    `json:"riders"`
	Capacity         int    `json:"capacity"`
	GrossWeightClass int    `json:"gross_weight_class"`
}

// Vehicle returns nil when no kind was given and Unknown for a kind that is
// not recognised. Kinds are case-insensitive and "truck" is accepted for
// delivery_truck. Attributes that do not belong to the kind are ignored.
func (s Spec) Vehicle() Vehicle {
	kind := strings.ToLower(strings.TrimSpace(s.Kind))
	switch Kind(kind) {
	case "":
		return nil
	case KindCar:
		return Car{Passengers: s.Passengers}
	case KindTaxi:
		return Taxi{Fares: s.Fares}
	case KindBus:
		return Bus{Riders: s.Riders, Capacity: s.Capacity}
	case KindDeliveryTruck, "truck":
		return DeliveryTruck{GrossWeightClass: s.GrossWeightClass}
	default:
		return Unknown{Value: s.Kind}
	}
}
