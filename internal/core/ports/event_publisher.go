package ports

import (
	"context"

	"wroom/internal/core/domain/model/kernel"
)

// OrderChangedEvent describes a single order status change for downstream
// consumers (analytics, notifications).
type OrderChangedEvent struct {
	OrderID   kernel.UUID  `json:"order_id"`
	Status    string       `json:"status"`
	CourierID *kernel.UUID `json:"courier_id,omitempty"`
}

// OrderEventPublisher delivers order change events to the message broker.
// Publishing is best-effort: a failed publish must not fail the command
// that produced the change.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
