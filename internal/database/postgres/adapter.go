package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)

	p.db = db
	return nil
}

func (p *Adapter) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Adapter) DB() *sql.DB {
	return p.db
}

func (p *Adapter) Builder() squirrel.StatementBuilderType {
	return p.qb
}
