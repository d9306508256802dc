package usecase

// OrderCreatedMsg is written to the outbox inside the checkout transaction
// and published to the order.events exchange by the drainer.
type OrderCreatedMsg struct {
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
}

// PaymentResultMsg arrives from the payment processor on Kafka.
type PaymentResultMsg struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"` // "SUCCESS" or a failure code
}
