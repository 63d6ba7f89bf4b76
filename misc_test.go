package gopaginator

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type gormMockFactory func() (string, *gorm.DB, sqlmock.Sqlmock, error)

var _gormMockFactories = []gormMockFactory{
	newGORMMySQLMock,
	newGORMPostgresMock,
}

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db, mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: mockDB,
	}), &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db, mock, nil
}

// forEachDialect runs fn in a subtest per mocked dialect.
func forEachDialect(t *testing.T, name string, fn func(t *testing.T, db *gorm.DB, mock sqlmock.Sqlmock)) {
	t.Helper()

	for _, factory := range _gormMockFactories {
		dialect, db, mock, err := factory()
		t.Run(dialect+" "+name, func(t *testing.T) {
			if err != nil {
				t.Fatalf("gorm open: %v", err)
			}

			fn(t, db, mock)
		})
	}
}
