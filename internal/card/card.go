// Package card renders a flight display model as a plain-text card.
package card

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/dustin/go-humanize"
)

// StatusLabel is the badge text: "on-time" reads "on time".
func StatusLabel(status domain.FlightStatus) string {
	return strings.Replace(string(status), "-", " ", 1)
}

// ThemeIcon is the toggle glyph: a sun offers light mode, a moon dark mode.
func ThemeIcon(dark bool) string {
	if dark {
		return "☀️"
	}
	return "🌙"
}

func Render(w io.Writer, m *domain.FlightDisplayModel) error {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s  [%s]\n", m.FlightNumber, StatusLabel(m.Status))
	if m.Airline != "" {
		fmt.Fprintln(&b, m.Airline)
	}
	fmt.Fprintln(&b)

	writeAirport(&b, "Departure", m.Departure)
	fmt.Fprintf(&b, "    ✈️  %s (%s mi)\n", m.Duration, humanize.Comma(int64(math.Round(m.DistanceMiles))))
	writeAirport(&b, "Arrival", m.Arrival)
	fmt.Fprintln(&b)

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Aircraft\t%s\n", m.Aircraft)
	fmt.Fprintf(tw, "Terminal\t%s\n", m.Departure.Terminal)
	fmt.Fprintf(tw, "Baggage Claim\t%s\n", m.Baggage)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := w.Write(b.Bytes())
	return err
}

func RenderString(m *domain.FlightDisplayModel) string {
	var sb strings.Builder
	_ = Render(&sb, m)
	return sb.String()
}

func writeAirport(b *bytes.Buffer, label string, a domain.AirportView) {
	fmt.Fprintf(b, "%s  %s\n", a.Code, airportName(a))
	fmt.Fprintf(b, "  %-9s  %s  %s\n", label, a.Time, a.Gate)
}

func airportName(a domain.AirportView) string {
	switch {
	case a.Name != "" && a.City != "":
		return a.Name + ", " + a.City
	case a.Name != "":
		return a.Name
	default:
		return a.City
	}
}
