package Services

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type SectionPatch struct {
	Name *string `json:"name"`
}

func GetSections(db *sqlx.DB, page, pageSize int) ([]Entities.Section, error) {
	query, args, err := sq.Select("id", "name", "placed_at").
		From("section").
		OrderBy("placed_at DESC", "id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}

	sections := make([]Entities.Section, 0)
	if err := db.Select(&sections, query, args...); err != nil {
		return nil, err
	}
	return sections, nil
}

func GetSection(db *sqlx.DB, id int64) (*Entities.Section, error) {
	var section Entities.Section
	err := db.Get(&section, "SELECT id, name, placed_at FROM section WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Section with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func CreateSection(db *sqlx.DB, p Principal, section *Entities.Section) (*Entities.Section, error) {
	if err := CanMutate(p, ResourceSection, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	res, err := db.Exec("INSERT INTO section (name, placed_at) VALUES (?, NOW())", section.Name)
	if err != nil {
		return nil, err
	}

	section.Id, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return GetSection(db, section.Id)
}

func PatchSection(db *sqlx.DB, p Principal, id int64, patch *SectionPatch) (*Entities.Section, error) {
	section, err := GetSection(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceSection, ActionPatch, nil); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, Errors.NotAllowed("Section name mustn't be blank")
		}

		if utf8.RuneCountInString(*patch.Name) > 100 {
			return nil, &Errors.ValidationFailed{Violations: []string{"Section name must be between 1 and 100 in length"}}
		}

		section.Name = *patch.Name
	}

	if _, err := db.Exec("UPDATE section SET name = ? WHERE id = ?", section.Name, id); err != nil {
		return nil, err
	}
	return section, nil
}

// DeleteSection removes the section; its topics, their comments and likes go
// with it through the FK cascade.
func DeleteSection(db *sqlx.DB, p Principal, id int64) error {
	if _, err := GetSection(db, id); err != nil {
		return err
	}

	if err := CanMutate(p, ResourceSection, ActionDelete, nil); err != nil {
		return err
	}

	_, err := db.Exec("DELETE FROM section WHERE id = ?", id)
	return err
}
