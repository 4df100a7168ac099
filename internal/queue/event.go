// Package queue defines the order event payload, its RabbitMQ publisher
// and the background consumer that writes the order log.
package queue

// OrderCreatedEvent is published after a checkout commits. It carries
// enough information for downstream consumers to log or notify without
// querying the primary database.
type OrderCreatedEvent struct {
	OrderID     uint64 `json:"order_id"`
	OrderNumber string `json:"order_number"`
	BookingCode string `json:"booking_code"`
	Email       string `json:"email"`
	SessionDate string `json:"session_date"`
	SessionTime string `json:"session_time"`
	Quantity    uint32 `json:"quantity"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}
