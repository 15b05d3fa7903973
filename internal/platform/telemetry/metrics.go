package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrPane        = attribute.Key("board.pane")
)

// Metrics holds the instruments recorded by the HTTP layers and the board
// service.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// BoardFetchTotal and BoardFetchDuration are labelled with result:
	// success, failure or stale.
	BoardFetchTotal    metric.Int64Counter
	BoardFetchDuration metric.Float64Histogram

	// BoardSessionTotal is labelled committed or cancelled.
	BoardSessionTotal metric.Int64Counter

	// BoardItemMovesTotal is labelled with the destination pane.
	BoardItemMovesTotal metric.Int64Counter
}

// instruments creates instruments on one meter and collects the first
// failure per instrument.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (in *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c
}

func (in *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	in := &instruments{meter: mp.Meter(serviceName)}

	m := &Metrics{
		ServerRequestDuration: in.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    in.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: in.seconds("http.client.request.duration", "Duration of calls to the list API including retries"),
		ClientRequestTotal:    in.counter("http.client.request.total", "Calls to the list API", "{request}"),

		BoardFetchTotal:     in.counter("board.fetch.total", "List fetches", "{fetch}"),
		BoardFetchDuration:  in.seconds("board.fetch.duration", "Duration of list fetches"),
		BoardSessionTotal:   in.counter("board.session.total", "Finished move sessions", "{session}"),
		BoardItemMovesTotal: in.counter("board.item.moves.total", "Items moved between lists", "{move}"),
	}
	if err := errors.Join(in.errs...); err != nil {
		return nil, err
	}
	return m, nil
}
