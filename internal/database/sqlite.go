package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type Config struct {
	Path          string
	BusyTimeoutMS int
	JournalMode   string
}

// NewSQLite opens the embedded database file at cfg.Path.
//
// The pool is capped at a single connection: SQLite has one writer anyway, and
// it makes every transaction run to completion before the next one begins.
func NewSQLite(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", cfg.Path, err)
	}
	return db, nil
}

func dsn(cfg *Config) string {
	q := url.Values{}
	if cfg.BusyTimeoutMS > 0 {
		q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeoutMS))
	}
	if cfg.JournalMode != "" {
		q.Add("_pragma", fmt.Sprintf("journal_mode(%s)", cfg.JournalMode))
	}
	if len(q) == 0 {
		return cfg.Path
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}
