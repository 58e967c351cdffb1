package Services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "mysql"), mock
}

func adminPrincipal() Principal {
	return Principal{Id: 1, Username: "admin", Role: "ROLE_ADMIN"}
}

func userPrincipal(id int64) Principal {
	return Principal{Id: id, Username: "member", Role: "ROLE_USER"}
}

func guestPrincipal() Principal {
	return Principal{}
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}
