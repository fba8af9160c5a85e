package domain

type FlightStatus string

const (
	FlightStatusOnTime   FlightStatus = "on-time"
	FlightStatusDelayed  FlightStatus = "delayed"
	FlightStatusBoarding FlightStatus = "boarding"
)

// FlightDisplayModel is the card-ready view of a single lookup. A new one is
// built for every successful search and never modified afterwards.
type FlightDisplayModel struct {
	FlightNumber  string       `json:"flight_number"`
	Airline       string       `json:"airline"`
	Status        FlightStatus `json:"status"`
	Departure     AirportView  `json:"departure"`
	Arrival       AirportView  `json:"arrival"`
	Aircraft      string       `json:"aircraft"`
	Duration      string       `json:"duration"`
	DistanceMiles float64      `json:"distance_miles"`
	Baggage       string       `json:"baggage"`
}

type AirportView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Time     string `json:"time"`
	Gate     string `json:"gate"`
	Terminal string `json:"terminal"`
}
