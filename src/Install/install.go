package Install

import (
	"os"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ExecuteSQLFile runs the schema file statement by statement; statements are
// separated by blank lines.
func ExecuteSQLFile(db *sqlx.DB, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	re := regexp.MustCompile(`(?m)^\s*$\s*`)
	statements := re.Split(string(content), -1)

	for _, statement := range statements {
		query := strings.TrimSpace(statement)
		if query == "" {
			continue
		}

		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
