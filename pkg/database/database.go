package database

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/harshx-2005/linkup-sub001/internal/helper"
)

const defaultPort = "3306"

var ErrNoDatabaseName = errors.New("DB_NAME is not set")

// Config describes the server and the database the reset utility works on.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// ConfigFromEnv reads DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Host:     helper.EnvOrDefault("DB_HOST", "localhost"),
		Port:     helper.EnvOrDefault("DB_PORT", defaultPort),
		User:     helper.EnvOrDefault("DB_USER", "root"),
		Password: helper.EnvOrDefault("DB_PASS", ""),
		Name:     helper.EnvOrDefault("DB_NAME", ""),
	}

	if cfg.Name == "" {
		return nil, ErrNoDatabaseName
	}

	return cfg, nil
}

// DSN connects to the server without selecting a database, since the
// database itself is dropped.
func (c *Config) DSN() string {
	connCfg := mysql.NewConfig()
	connCfg.User = c.User
	connCfg.Passwd = c.Password
	connCfg.Net = "tcp"
	connCfg.Addr = net.JoinHostPort(c.Host, c.Port)
	connCfg.AllowNativePasswords = true

	return connCfg.FormatDSN()
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func Open(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open connection to %s", cfg.Addr())
	}
	return db, nil
}

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// QuoteIdentifier quotes name for use as a MySQL identifier.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// Reset drops the database if it exists and creates it again, empty.
func Reset(ctx context.Context, db Execer, name string) error {
	if name == "" {
		return ErrNoDatabaseName
	}

	ident := QuoteIdentifier(name)

	if _, err := db.ExecContext(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return pkgerrors.Wrapf(err, "failed to drop database %s", ident)
	}
	log.WithField("database", name).Info("dropped database")

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+ident); err != nil {
		return pkgerrors.Wrapf(err, "failed to create database %s", ident)
	}
	log.WithField("database", name).Info("created database")

	return nil
}

// Ping checks that the server answers queries.
func Ping(ctx context.Context, db *sql.DB) error {
	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return pkgerrors.Wrap(err, "failed to select from database server")
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "mysql", "status": "alive"}).Debug("database server answered")
	return nil
}
