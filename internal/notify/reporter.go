package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Domenick1991/flighttracker/internal/kafka"
)

// Reporter writes one line per lookup event.
type Reporter struct {
	logger *log.Logger
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{logger: log.New(w, "lookup ", log.LstdFlags|log.LUTC)}
}

func (r *Reporter) Report(ctx context.Context, event kafka.LookupEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Print(describe(event))
	return nil
}

func describe(event kafka.LookupEvent) string {
	switch event.Type {
	case kafka.EventLookupSucceeded:
		return fmt.Sprintf("%s ok: %q -> %s %s-%s (date %s)",
			event.ID, event.Identifier, event.FlightNumber, event.Origin, event.Destination, event.Date)
	case kafka.EventLookupFailed:
		return fmt.Sprintf("%s failed: %q (date %s): %s", event.ID, event.Identifier, event.Date, event.Error)
	default:
		return fmt.Sprintf("%s unknown event type %q for %q", event.ID, event.Type, event.Identifier)
	}
}
