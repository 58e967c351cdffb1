package Services

import (
	"database/sql"
	"fmt"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/jmoiron/sqlx"
)

func GetAllReputations(db *sqlx.DB) ([]Entities.Reputation, error) {
	reps := make([]Entities.Reputation, 0)
	err := db.Select(&reps, "SELECT id, msg, user_id, target_user_id FROM reputation ORDER BY id")
	if err != nil {
		return nil, err
	}
	return reps, nil
}

func GetReputation(db *sqlx.DB, id int64) (*Entities.Reputation, error) {
	var rep Entities.Reputation
	err := db.Get(&rep, "SELECT id, msg, user_id, target_user_id FROM reputation WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Reputation with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// CreateReputation awards reputation to another user; awarding yourself is
// not allowed.
func CreateReputation(db *sqlx.DB, p Principal, rep *Entities.Reputation) (*Entities.Reputation, error) {
	if err := CanMutate(p, ResourceReputation, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := rep.Validate(); err != nil {
		return nil, err
	}

	if rep.TargetUserId == p.Id {
		return nil, Errors.NotAllowed("You can't increase your own reputation")
	}

	if _, err := GetUser(db, rep.TargetUserId); err != nil {
		return nil, err
	}

	res, err := db.Exec("INSERT INTO reputation (msg, user_id, target_user_id) VALUES (?, ?, ?)",
		rep.Msg, p.Id, rep.TargetUserId)
	if err != nil {
		return nil, err
	}

	rep.Id, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	rep.UserId = p.Id
	return rep, nil
}

func DeleteReputation(db *sqlx.DB, p Principal, id int64) error {
	if _, err := GetReputation(db, id); err != nil {
		return err
	}

	if err := CanMutate(p, ResourceReputation, ActionDelete, nil); err != nil {
		return err
	}

	_, err := db.Exec("DELETE FROM reputation WHERE id = ?", id)
	return err
}
