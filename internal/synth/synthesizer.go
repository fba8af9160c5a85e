// Package synth turns a bare route record into a full flight card model.
//
// The route service only knows origin, destination and airline. Status,
// aircraft, gates, terminals, baggage claim and clock times are simulated.
// The clock times are drawn independently of the computed duration, so the
// gap between departure and arrival does not match the displayed duration.
package synth

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/Domenick1991/flighttracker/internal/domain"
)

// Rand is the randomness capability the synthesizer draws from.
// IntN returns a value in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a function such as rand.IntN to Rand.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int {
	return f(n)
}

var (
	statusPool = []domain.FlightStatus{
		domain.FlightStatusOnTime,
		domain.FlightStatusOnTime,
		domain.FlightStatusOnTime,
		domain.FlightStatusDelayed,
		domain.FlightStatusBoarding,
	}

	aircraftTypes = []string{
		"Boeing 737-800",
		"Boeing 737 MAX 8",
		"Airbus A320",
		"Airbus A321",
		"Boeing 757-200",
		"Boeing 777-300ER",
		"Airbus A350",
	}

	gateLetters = []string{"A", "B", "C", "D", "E"}
)

const (
	maxGateNumber     = 50
	maxCarousel       = 10
	minFlightHours    = 2
	flightHoursSpread = 6
)

type Synthesizer struct {
	mu  sync.Mutex
	rnd Rand
}

// New returns a synthesizer drawing from rnd. A nil rnd uses the
// package-level math/rand/v2 source.
func New(rnd Rand) *Synthesizer {
	if rnd == nil {
		rnd = RandFunc(rand.IntN)
	}
	return &Synthesizer{rnd: rnd}
}

// Synthesize builds the display model for record. Draw order is fixed:
// clock times, departure gate, arrival gate, status, aircraft, baggage.
func (s *Synthesizer) Synthesize(record *domain.RouteRecord) *domain.FlightDisplayModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	departureTime, arrivalTime := s.clockTimes()
	departureGate, departureTerminal := s.gate()
	arrivalGate, arrivalTerminal := s.gate()
	status := statusPool[s.rnd.IntN(len(statusPool))]
	aircraft := aircraftTypes[s.rnd.IntN(len(aircraftTypes))]
	carousel := s.rnd.IntN(maxCarousel) + 1

	origin, destination := record.Origin, record.Destination
	miles := DistanceMiles(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)

	return &domain.FlightDisplayModel{
		FlightNumber: record.FlightNumber(),
		Airline:      record.Airline.Name,
		Status:       status,
		Departure: domain.AirportView{
			Code:     origin.DisplayCode(),
			Name:     origin.Name,
			City:     origin.Municipality,
			Time:     departureTime,
			Gate:     departureGate,
			Terminal: departureTerminal,
		},
		Arrival: domain.AirportView{
			Code:     destination.DisplayCode(),
			Name:     destination.Name,
			City:     destination.Municipality,
			Time:     arrivalTime,
			Gate:     arrivalGate,
			Terminal: arrivalTerminal,
		},
		Aircraft:      aircraft,
		Duration:      FormatDuration(miles),
		DistanceMiles: miles,
		Baggage:       fmt.Sprintf("Carousel %d", carousel),
	}
}

// clockTimes picks a departure in the day and an arrival 2 to 7 whole hours
// later, wrapping past midnight.
func (s *Synthesizer) clockTimes() (string, string) {
	hour := s.rnd.IntN(24)
	minute := s.rnd.IntN(60)
	arrivalHour := (hour + minFlightHours + s.rnd.IntN(flightHoursSpread)) % 24
	return clock(hour, minute), clock(arrivalHour, minute)
}

func (s *Synthesizer) gate() (gate, terminal string) {
	letter := gateLetters[s.rnd.IntN(len(gateLetters))]
	number := s.rnd.IntN(maxGateNumber) + 1
	return fmt.Sprintf("Gate %s%d", letter, number), "Terminal " + letter
}

func clock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
