package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromValue(t *testing.T) {
	var nilCar *Car
	var nilBus *Bus

	tests := []struct {
		name string
		in   any
		want Vehicle
	}{
		{name: "nil", in: nil, want: nil},
		{name: "nil car pointer", in: nilCar, want: nil},
		{name: "nil bus pointer", in: nilBus, want: nil},
		{name: "car value", in: Car{Passengers: 2}, want: Car{Passengers: 2}},
		{name: "taxi pointer", in: &Taxi{Fares: 1}, want: Taxi{Fares: 1}},
		{name: "bus pointer", in: &Bus{Riders: 10, Capacity: 40}, want: Bus{Riders: 10, Capacity: 40}},
		{name: "truck value", in: DeliveryTruck{GrossWeightClass: 4200}, want: DeliveryTruck{GrossWeightClass: 4200}},
		{name: "string", in: "this will fail", want: Unknown{Value: "this will fail"}},
		{name: "int", in: 42, want: Unknown{Value: 42}},
		{name: "unknown passes through", in: Unknown{Value: "boat"}, want: Unknown{Value: "boat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromValue(tt.in))
		})
	}
}

func TestSpec_Vehicle(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want Vehicle
	}{
		{name: "empty kind is absent", spec: Spec{Passengers: 3}, want: nil},
		{name: "blank kind is absent", spec: Spec{Kind: "  "}, want: nil},
		{name: "car", spec: Spec{Kind: "car", Passengers: 3, Fares: 9}, want: Car{Passengers: 3}},
		{name: "taxi is case insensitive", spec: Spec{Kind: "Taxi", Fares: 2}, want: Taxi{Fares: 2}},
		{name: "bus", spec: Spec{Kind: "bus", Riders: 20, Capacity: 50}, want: Bus{Riders: 20, Capacity: 50}},
		{name: "delivery truck", spec: Spec{Kind: "delivery_truck", GrossWeightClass: 6000}, want: DeliveryTruck{GrossWeightClass: 6000}},
		{name: "truck alias", spec: Spec{Kind: "truck", GrossWeightClass: 2500}, want: DeliveryTruck{GrossWeightClass: 2500}},
		{name: "unrecognised kind", spec: Spec{Kind: "boat"}, want: Unknown{Value: "boat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Vehicle())
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindCar, Car{}.Kind())
	assert.Equal(t, KindTaxi, Taxi{}.Kind())
	assert.Equal(t, KindBus, Bus{}.Kind())
	assert.Equal(t, KindDeliveryTruck, DeliveryTruck{}.Kind())
	assert.Equal(t, KindUnknown, Unknown{}.Kind())
}
