package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	// Accept sqlite://path, file:path or a bare path.
	path := strings.TrimPrefix(url, "sqlite://")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids lock errors.
	db.SetMaxOpenConns(1)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) DB() *sql.DB {
	return s.db
}

func (s *Adapter) Builder() squirrel.StatementBuilderType {
	return s.qb
}
