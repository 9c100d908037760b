package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tollcalc/internal/modules/toll"
	"tollcalc/internal/modules/vehicle"
)

func main() {
	ctx := context.Background()
	svc := toll.NewService(nil)

	samples := []struct {
		label   string
		vehicle vehicle.Vehicle
	}{
		{label: "car", vehicle: vehicle.Car{}},
		{label: "taxi", vehicle: vehicle.Taxi{}},
		{label: "bus", vehicle: vehicle.Bus{Riders: 30, Capacity: 50}},
		{label: "truck", vehicle: vehicle.DeliveryTruck{GrossWeightClass: 4000}},
	}

	for _, s := range samples {
		fee, err := svc.BaseToll(ctx, s.vehicle)
		if err != nil {
			log.Fatalf("toll for %s: %v", s.label, err)
		}
		fmt.Printf("The toll for a %s is %s\n", s.label, fee)
	}

	if _, err := svc.BaseToll(ctx, vehicle.FromValue("this will fail")); errors.Is(err, toll.ErrInvalidVehicleType) {
		fmt.Println("Caught an argument exception when using the wrong type")
	}
	if _, err := svc.BaseToll(ctx, vehicle.FromValue(nil)); errors.Is(err, toll.ErrMissingVehicle) {
		fmt.Println("Caught an argument exception when using null")
	}
}
