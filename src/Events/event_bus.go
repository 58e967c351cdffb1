package Events

import (
	"sync"

	"github.com/jmoiron/sqlx"
)

type EventType string

const (
	AuditRecorded EventType = "AuditRecorded"
)

type EventData interface{}

// AuditEvent describes a successful mutation or read worth an audit record.
type AuditEvent struct {
	Username string
	Method   string
	Resource string
}

type EventHandler func(db *sqlx.DB, data EventData)

var (
	subscribers = make(map[EventType][]EventHandler)
	mu          sync.RWMutex
)

func Subscribe(eventType EventType, handler EventHandler) {
	mu.Lock()
	defer mu.Unlock()
	subscribers[eventType] = append(subscribers[eventType], handler)
}

func Publish(db *sqlx.DB, eventType EventType, data EventData) {
	mu.RLock()
	defer mu.RUnlock()
	if handlers, found := subscribers[eventType]; found {
		for _, handler := range handlers {
			// Run handlers in a goroutine to avoid blocking the main request
			go handler(db, data)
		}
	}
}
