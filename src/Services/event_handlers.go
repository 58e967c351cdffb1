package Services

import (
	"fmt"
	"log"

	"github.com/DF-Mephisto/Rest-Forum/src/Events"

	"github.com/jmoiron/sqlx"
)

func RegisterEventHandlers(db *sqlx.DB) {
	// Audit trail: one log row per successful audited endpoint. Failures are
	// logged and dropped; the primary operation already succeeded.
	Events.Subscribe(Events.AuditRecorded, func(db *sqlx.DB, data Events.EventData) {
		event, ok := data.(Events.AuditEvent)
		if !ok {
			return
		}

		desc := fmt.Sprintf("%s method was activated in %s controller", event.Method, event.Resource)
		if err := RecordLog(db, event.Username, desc); err != nil {
			log.Printf("Error writing audit record: %v", err)
		}
	})
}

// Audit publishes an audit event after a successful operation. Fire and
// forget: it never blocks the caller.
func Audit(db *sqlx.DB, p Principal, method, resource string) {
	username := p.Username
	if username == "" {
		username = "null"
	}
	Events.Publish(db, Events.AuditRecorded, Events.AuditEvent{
		Username: username,
		Method:   method,
		Resource: resource,
	})
}
