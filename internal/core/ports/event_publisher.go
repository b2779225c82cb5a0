package ports

import "context"

// Topic names for the notification fan-out.
const (
	// TopicOrderReadyForPickup is the global broadcast drivers listen on.
	TopicOrderReadyForPickup = "order_ready_for_pickup"
)

// RestaurantOrdersTopic names the per-restaurant new-order topic.
func RestaurantOrdersTopic(restaurantID string) string {
	return "restaurant_" + restaurantID + "_orders"
}

// OrderTopic names the per-order status topic.
func OrderTopic(orderID string) string {
	return "order_" + orderID
}

// EventPublisher is the notification fan-out: best-effort, at-most-once
// delivery to whoever is subscribed to the topic at emission time.
//
// Publish is invoked strictly after a successful commit and must never
// block or fail the committing operation; implementations log delivery
// problems and move on. Safe for concurrent producers.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any)
}
