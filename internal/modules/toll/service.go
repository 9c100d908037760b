// README: Toll service wraps the rule tables with currency, clock and logging.
package toll

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tollcalc/internal/modules/vehicle"
	"tollcalc/internal/types"
)

type Service struct {
	log      *zap.Logger
	currency string
	loc      *time.Location
	now      func() time.Time
}

type Option func(*Service)

func WithCurrency(currency string) Option {
	return func(s *Service) {
		if currency != "" {
			s.currency = currency
		}
	}
}

// WithLocation sets the zone used when a premium is requested without a timestamp.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		log:      log,
		currency: types.DefaultCurrency,
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) BaseToll(ctx context.Context, v vehicle.Vehicle) (types.Money, error) {
	fee, err := ComputeBaseToll(v)
	if err != nil {
		s.log.Debug("base toll rejected", zap.Error(err))
		return types.Money{}, err
	}
	fee = fee.WithCurrency(s.currency)
	s.log.Debug("base toll computed",
		zap.String("kind", string(v.Kind())),
		zap.Stringer("fee", fee),
		zap.String("currency", fee.Currency),
	)
	return fee, nil
}

// PeakPremium uses the service clock when at is zero.
func (s *Service) PeakPremium(ctx context.Context, at time.Time, inbound bool) Premium {
	if at.IsZero() {
		at = s.now().In(s.loc)
	}
	p := Premium{
		Multiplier: ComputePeakPremium(at, inbound),
		Band:       ClassifyTime(at),
		At:         at,
		Inbound:    inbound,
	}
	s.log.Debug("peak premium computed",
		zap.Time("at", at),
		zap.Bool("inbound", inbound),
		zap.String("band", string(p.Band)),
		zap.Stringer("premium", p.Multiplier),
	)
	return p
}

func (s *Service) Quote(ctx context.Context, v vehicle.Vehicle, at time.Time, inbound bool) (Quote, error) {
	fee, err := s.BaseToll(ctx, v)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		Kind:    v.Kind(),
		Fee:     fee,
		Premium: s.PeakPremium(ctx, at, inbound),
	}, nil
}
