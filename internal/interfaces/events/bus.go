package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

// BookingsTopicPrefix namespaces every booking event stream, e.g.
// "bookings.BookingCreated_v1".
const BookingsTopicPrefix = "bookings."

func NewEventBus(
	pub message.Publisher,
	logger watermill.LoggerAdapter,
) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(
		pub,
		cqrs.EventBusConfig{
			GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
				return BookingsTopicPrefix + params.EventName, nil
			},
			Marshaler: cqrs.JSONMarshaler{
				GenerateName: cqrs.StructName,
			},
			Logger: logger,
		},
	)
}

// NopEventBus drops every event. Used when no Redis is configured.
type NopEventBus struct{}

func (NopEventBus) Publish(context.Context, any) error {
	return nil
}
