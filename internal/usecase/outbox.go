package usecase

import "time"

// OutboxStatus — состояние события в таблице outbox.
type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEventType — тип доменного события.
type OutboxEventType string

const (
	OrderPlaced    OutboxEventType = "order_placed"
	OrderCancelled OutboxEventType = "order_cancelled"
)

// OutboxEvent — событие, записанное в одной транзакции с заказом
// и публикуемое в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte // JSON-представление события
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

// WriteRawMessageReq — готовый к отправке в Kafka payload события.
type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
