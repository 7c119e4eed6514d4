package db

import (
	"log"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/meinhoongagan/tourbook/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewMockDB() (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}

	return gormDB, mock
}

func TestOpenRequiresURL(t *testing.T) {
	_, err := Open(config.DatabaseConfig{})
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	gormDB, mock := NewMockDB()
	mock.ExpectClose()

	require.NoError(t, Close(gormDB))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, Close(nil))
}

func paginateStatement(skip, limit int) *gorm.Statement {
	gormDB, _ := NewMockDB()
	return gormDB.Session(&gorm.Session{DryRun: true}).
		Table("tours").
		Scopes(Paginate(skip, limit)).
		Find(&[]map[string]interface{}{}).Statement
}

func TestPaginate(t *testing.T) {
	stmt := paginateStatement(-5, 1000)
	assert.Contains(t, stmt.SQL.String(), "LIMIT $1")
	assert.NotContains(t, stmt.SQL.String(), "OFFSET")
	assert.Equal(t, []interface{}{MaxLimit}, stmt.Vars)

	stmt = paginateStatement(0, 0)
	assert.Equal(t, []interface{}{DefaultLimit}, stmt.Vars)

	stmt = paginateStatement(20, 5)
	assert.Contains(t, stmt.SQL.String(), "LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{5, 20}, stmt.Vars)
}
