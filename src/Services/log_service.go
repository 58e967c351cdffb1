package Services

import (
	"github.com/DF-Mephisto/Rest-Forum/src/Entities"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// RecordLog writes one audit record. Called from the audit event handler,
// off the request path; its failure never affects the primary operation.
func RecordLog(db *sqlx.DB, username, description string) error {
	_, err := db.Exec("INSERT INTO log (id, username, description, created_at) VALUES (?, ?, ?, NOW())",
		uuid.NewString(), username, description)
	return err
}

func GetLogs(db *sqlx.DB, p Principal) ([]Entities.Log, error) {
	if err := CanMutate(p, ResourceLog, ActionRead, nil); err != nil {
		return nil, err
	}

	logs := make([]Entities.Log, 0)
	err := db.Select(&logs, "SELECT id, username, description, created_at FROM log ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	return logs, nil
}
