package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	failOn  string
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	if r.failOn != "" && query == r.failOn {
		return nil, errors.New("access denied")
	}
	return nil, nil
}

func TestResetDropsThenCreates(t *testing.T) {
	db := &recordingExecer{}

	require.NoError(t, Reset(context.Background(), db, "linkup"))

	assert.Equal(t, []string{
		"DROP DATABASE IF EXISTS `linkup`",
		"CREATE DATABASE `linkup`",
	}, db.queries)
}

func TestResetStopsWhenDropFails(t *testing.T) {
	db := &recordingExecer{failOn: "DROP DATABASE IF EXISTS `linkup`"}

	err := Reset(context.Background(), db, "linkup")

	assert.ErrorContains(t, err, "failed to drop database `linkup`: access denied")
	assert.Len(t, db.queries, 1)
}

func TestResetRequiresName(t *testing.T) {
	assert.ErrorIs(t, Reset(context.Background(), &recordingExecer{}, ""), ErrNoDatabaseName)
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, "`app`", QuoteIdentifier("app"))
	assert.Equal(t, "`we``ird`", QuoteIdentifier("we`ird"))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_NAME", "linkup")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "db.internal:3306", cfg.Addr())

	parsed, err := mysql.ParseDSN(cfg.DSN())
	require.NoError(t, err)
	assert.Equal(t, "app", parsed.User)
	assert.Equal(t, "pw", parsed.Passwd)
	assert.Equal(t, "db.internal:3306", parsed.Addr)
	assert.Empty(t, parsed.DBName)
}

func TestConfigFromEnvRequiresName(t *testing.T) {
	t.Setenv("DB_NAME", "")

	_, err := ConfigFromEnv()

	assert.ErrorIs(t, err, ErrNoDatabaseName)
}
