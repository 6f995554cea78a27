package services

// EventPublisher publishes lifecycle events to the message broker. A nil
// publisher disables publishing; services treat publish failures as
// best-effort and only log them.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}
