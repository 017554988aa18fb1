package metrics

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.opentelemetry.io/otel/metric"
)

// NewPoolMonitor returns a driver pool monitor tracking open and checked-out
// connections to the document store as up/down counters.
func NewPoolMonitor(meterProvider metric.MeterProvider, namespace string) (*event.PoolMonitor, error) {
	meter := meterProvider.Meter(namespace)

	open, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s_store_connections_open", namespace),
		metric.WithDescription("Open connections to the document store"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create open connections counter: %w", err)
	}

	inUse, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s_store_connections_in_use", namespace),
		metric.WithDescription("Connections checked out of the document store pool"),
		metric.WithUnit("{connection}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-use connections counter: %w", err)
	}

	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			ctx := context.Background()
			switch evt.Type {
			case event.ConnectionCreated:
				open.Add(ctx, 1)
			case event.ConnectionClosed:
				open.Add(ctx, -1)
			case event.ConnectionCheckedOut:
				inUse.Add(ctx, 1)
			case event.ConnectionCheckedIn:
				inUse.Add(ctx, -1)
			}
		},
	}, nil
}
