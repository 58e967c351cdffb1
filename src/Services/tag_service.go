package Services

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/jmoiron/sqlx"
)

type TagPatch struct {
	Name *string `json:"name"`
}

func GetAllTags(db *sqlx.DB) ([]Entities.Tag, error) {
	tags := make([]Entities.Tag, 0)
	err := db.Select(&tags, "SELECT id, name FROM tag ORDER BY id")
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func GetTag(db *sqlx.DB, id int64) (*Entities.Tag, error) {
	var tag Entities.Tag
	err := db.Get(&tag, "SELECT id, name FROM tag WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Tag with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func CreateTag(db *sqlx.DB, p Principal, tag *Entities.Tag) (*Entities.Tag, error) {
	if err := CanMutate(p, ResourceTag, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	taken, err := NameTaken(db, "tag", "name", tag.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Tag with name %s already exists", tag.Name))
	}

	res, err := db.Exec("INSERT INTO tag (name) VALUES (?)", tag.Name)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Tag with name %s already exists", tag.Name))
	}
	if err != nil {
		return nil, err
	}

	tag.Id, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func PatchTag(db *sqlx.DB, p Principal, id int64, patch *TagPatch) (*Entities.Tag, error) {
	tag, err := GetTag(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceTag, ActionPatch, nil); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, Errors.NotAllowed("Tag name mustn't be blank")
		}

		if utf8.RuneCountInString(*patch.Name) > 20 {
			return nil, &Errors.ValidationFailed{Violations: []string{"Tag name must be between 1 and 20 in length"}}
		}

		if tag.Name != *patch.Name {
			taken, err := NameTaken(db, "tag", "name", *patch.Name, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, Errors.AlreadyExists(fmt.Sprintf("Tag with name %s already exists", *patch.Name))
			}
		}

		tag.Name = *patch.Name
	}

	_, err = db.Exec("UPDATE tag SET name = ? WHERE id = ?", tag.Name, id)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Tag with name %s already exists", tag.Name))
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func DeleteTag(db *sqlx.DB, p Principal, id int64) error {
	if _, err := GetTag(db, id); err != nil {
		return err
	}

	if err := CanMutate(p, ResourceTag, ActionDelete, nil); err != nil {
		return err
	}

	_, err := db.Exec("DELETE FROM tag WHERE id = ?", id)
	return err
}
