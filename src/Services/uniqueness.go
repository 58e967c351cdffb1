package Services

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// NameTaken reports whether a different row of table already holds name in
// the given column ("name" for role and tag, "username" for user_info).
// excludeId skips the entity's own row so renaming to the current name is a
// no-op rather than a conflict; pass 0 on create.
//
// This is a check-then-act read: two concurrent writers can both pass it.
// The UNIQUE constraint in storage is the authority, and callers translate
// its violation with IsDuplicateEntry into the same domain outcome.
func NameTaken(db *sqlx.DB, table string, column string, name string, excludeId int64) (bool, error) {
	query := sq.Select("id").From(table).Where(sq.Eq{column: name})
	if excludeId != 0 {
		query = query.Where(sq.NotEq{"id": excludeId})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var id int64
	err = db.Get(&id, sqlStr, args...)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry recognizes the storage-level unique constraint violation
// that backstops the uniqueness checks under concurrent writes.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
