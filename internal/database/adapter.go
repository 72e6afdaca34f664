package database

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

// Adapter is the minimal surface the loader needs from a database:
// a live connection plus a statement builder with the right placeholder
// format for the provider.
type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error
	DB() *sql.DB
	Builder() squirrel.StatementBuilderType
}
