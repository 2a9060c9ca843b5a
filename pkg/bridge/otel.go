package bridge

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for floatkit sessions.
const defaultTracerName = "floatkit"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "floatkit").
	TracerName string

	// Filter determines which events to trace. Return true to trace.
	// If nil, all events are traced.
	Filter func(ev *Event) bool

	// AttributeExtractor extracts custom attributes per traced event.
	AttributeExtractor func(ev *Event) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithEventFilter sets a filter function for events.
func WithEventFilter(filter func(ev *Event) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ev *Event) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that traces every dispatched event.
//
// The tracer comes from the global OpenTelemetry tracer provider;
// configure one in main() before serving sessions.
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next Dispatch) Dispatch {
		return func(ev *Event) error {
			if config.Filter != nil && !config.Filter(ev) {
				return next(ev)
			}

			attrs := []attribute.KeyValue{
				attribute.String("floatkit.element", ev.Element),
				attribute.String("floatkit.event", ev.Name),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(ev)...)
			}

			_, span := config.tracer.Start(
				context.Background(),
				fmt.Sprintf("floatkit.%s", ev.Name),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
				trace.WithTimestamp(ev.Time),
			)
			defer span.End()

			err := next(ev)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
