package domain

// RouteQuery is what the user submitted. Date is kept for future filtering,
// the route service has no date dimension.
type RouteQuery struct {
	Identifier string
	Date       string
}

// RouteRecord is the flightroute object returned by the callsign lookup.
type RouteRecord struct {
	Callsign     string  `json:"callsign"`
	CallsignICAO string  `json:"callsign_icao,omitempty"`
	CallsignIATA string  `json:"callsign_iata,omitempty"`
	Airline      Airline `json:"airline"`
	Origin       Airport `json:"origin"`
	Destination  Airport `json:"destination"`
}

type Airline struct {
	Name     string `json:"name"`
	ICAOCode string `json:"icao_code,omitempty"`
	IATACode string `json:"iata_code,omitempty"`
	Callsign string `json:"callsign,omitempty"`
	Country  string `json:"country,omitempty"`
}

type Airport struct {
	IATACode     string  `json:"iata_code,omitempty"`
	ICAOCode     string  `json:"icao_code,omitempty"`
	Name         string  `json:"name"`
	Municipality string  `json:"municipality"`
	CountryName  string  `json:"country_name,omitempty"`
	Latitude     float64 `json:"latitude_deg"`
	Longitude    float64 `json:"longitude_deg"`
}

// DisplayCode prefers the IATA code and falls back to ICAO.
func (a Airport) DisplayCode() string {
	if a.IATACode != "" {
		return a.IATACode
	}
	return a.ICAOCode
}

// FlightNumber prefers the IATA style callsign over the raw one.
func (r RouteRecord) FlightNumber() string {
	if r.CallsignIATA != "" {
		return r.CallsignIATA
	}
	return r.Callsign
}
