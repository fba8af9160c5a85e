package flights

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/kafka"
	"github.com/Domenick1991/flighttracker/internal/lookup"
	"github.com/google/uuid"
)

// DateLayout is the format of the search date, as sent by a date input.
const DateLayout = "2006-01-02"

var (
	ErrEmptyIdentifier = errors.New("flight number is required")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

type FlightUseCase interface {
	Search(ctx context.Context, identifier, date string) (*domain.FlightDisplayModel, error)
}

type RouteCache interface {
	GetRoute(ctx context.Context, callsign string) (*domain.RouteRecord, error)
	SetRoute(ctx context.Context, callsign string, record *domain.RouteRecord) error
}

type Synthesizer interface {
	Synthesize(record *domain.RouteRecord) *domain.FlightDisplayModel
}

type EventProducer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	routes      lookup.RouteFetcher
	synth       Synthesizer
	cache       RouteCache
	producer    EventProducer
	eventsTopic string
	now         func() time.Time
}

type FlightServiceOption func(*FlightService)

func WithRouteCache(cache RouteCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithLookupEvents(producer EventProducer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		s.now = now
	}
}

func NewFlightService(routes lookup.RouteFetcher, synth Synthesizer, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{
		routes: routes,
		synth:  synth,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search looks up the route for identifier and returns a freshly synthesized
// card model. Lookup errors are returned unchanged so callers can match the
// lookup error types.
func (s *FlightService) Search(ctx context.Context, identifier, date string) (*domain.FlightDisplayModel, error) {
	query, err := s.buildQuery(identifier, date)
	if err != nil {
		return nil, err
	}
	key := lookup.NormalizeIdentifier(query.Identifier)

	record, err := s.route(ctx, query, key)
	if err != nil {
		s.publish(ctx, kafka.LookupEvent{
			Type:       kafka.EventLookupFailed,
			Identifier: query.Identifier,
			Normalized: key,
			Date:       query.Date,
			Error:      err.Error(),
		})
		return nil, err
	}

	model := s.synth.Synthesize(record)
	s.publish(ctx, kafka.LookupEvent{
		Type:         kafka.EventLookupSucceeded,
		Identifier:   query.Identifier,
		Normalized:   key,
		Date:         query.Date,
		FlightNumber: model.FlightNumber,
		Origin:       model.Departure.Code,
		Destination:  model.Arrival.Code,
	})
	return model, nil
}

func (s *FlightService) buildQuery(identifier, date string) (domain.RouteQuery, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.RouteQuery{}, ErrEmptyIdentifier
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = s.now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return domain.RouteQuery{}, ErrInvalidDate
	}
	return domain.RouteQuery{Identifier: identifier, Date: date}, nil
}

func (s *FlightService) route(ctx context.Context, query domain.RouteQuery, key string) (*domain.RouteRecord, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRoute(ctx, key)
		if err != nil {
			log.Printf("route cache get %s: %v", key, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	record, err := s.routes.FetchRoute(ctx, query.Identifier, query.Date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRoute(ctx, key, record); err != nil {
			log.Printf("route cache set %s: %v", key, err)
		}
	}
	return record, nil
}

func (s *FlightService) publish(ctx context.Context, event kafka.LookupEvent) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = s.now().UTC()
	if err := s.producer.Publish(ctx, s.eventsTopic, event.Normalized, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, event.Normalized, err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
