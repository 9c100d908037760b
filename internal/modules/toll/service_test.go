package toll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tollcalc/internal/modules/vehicle"
	"tollcalc/internal/types"
)

func TestService_BaseToll(t *testing.T) {
	ctx := context.Background()

	t.Run("default currency", func(t *testing.T) {
		s := NewService(nil)
		fee, err := s.BaseToll(ctx, vehicle.Car{Passengers: 1})
		require.NoError(t, err)
		assert.Equal(t, "2.00", fee.String())
		assert.Equal(t, types.DefaultCurrency, fee.Currency)
	})

	t.Run("configured currency", func(t *testing.T) {
		s := NewService(nil, WithCurrency("EUR"))
		fee, err := s.BaseToll(ctx, vehicle.DeliveryTruck{GrossWeightClass: 6000})
		require.NoError(t, err)
		assert.Equal(t, "15.00", fee.String())
		assert.Equal(t, "EUR", fee.Currency)
	})

	t.Run("errors pass through", func(t *testing.T) {
		s := NewService(nil)
		_, err := s.BaseToll(ctx, nil)
		assert.ErrorIs(t, err, ErrMissingVehicle)
		_, err = s.BaseToll(ctx, vehicle.FromValue(3.14))
		assert.ErrorIs(t, err, ErrInvalidVehicleType)
	})
}

func TestService_BaseToll_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewService(zap.New(core))

	_, err := s.BaseToll(context.Background(), vehicle.Taxi{Fares: 2})
	require.NoError(t, err)

	entries := logs.FilterMessage("base toll computed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "taxi", fields["kind"])
	assert.Equal(t, "3.00", fields["fee"])
}

func TestService_PeakPremium(t *testing.T) {
	ctx := context.Background()
	// Monday 07:15 UTC
	clock := func() time.Time { return time.Date(2026, 2, 9, 7, 15, 0, 0, time.UTC) }

	t.Run("explicit timestamp", func(t *testing.T) {
		s := NewService(nil, WithClock(clock))
		p := s.PeakPremium(ctx, time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC), false)
		assert.Equal(t, "2.00", p.Multiplier.StringFixed(2))
		assert.Equal(t, BandEveningRush, p.Band)
		assert.False(t, p.Inbound)
	})

	t.Run("zero timestamp uses the clock", func(t *testing.T) {
		s := NewService(nil, WithClock(clock))
		p := s.PeakPremium(ctx, time.Time{}, true)
		assert.Equal(t, "2.00", p.Multiplier.StringFixed(2))
		assert.Equal(t, BandMorningRush, p.Band)
		assert.True(t, p.At.Equal(clock()))
	})

	t.Run("clock is read in the configured location", func(t *testing.T) {
		// 07:15 UTC is 18:15 in UTC+11
		s := NewService(nil, WithClock(clock), WithLocation(time.FixedZone("UTC+11", 11*60*60)))
		p := s.PeakPremium(ctx, time.Time{}, true)
		assert.Equal(t, BandEveningRush, p.Band)
		assert.Equal(t, "1.00", p.Multiplier.StringFixed(2))
	})
}

func TestService_Quote(t *testing.T) {
	s := NewService(nil)
	ts := time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC) // Saturday

	q, err := s.Quote(context.Background(), vehicle.Bus{Riders: 45, Capacity: 50}, ts, true)
	require.NoError(t, err)
	assert.Equal(t, vehicle.KindBus, q.Kind)
	assert.Equal(t, "5.00", q.Fee.String())
	assert.Equal(t, "1.00", q.Premium.Multiplier.StringFixed(2))
	assert.Equal(t, BandWeekend, q.Premium.Band)

	_, err = s.Quote(context.Background(), nil, ts, true)
	assert.ErrorIs(t, err, ErrMissingVehicle)
}
