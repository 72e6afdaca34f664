package database

import (
	"github.com/remit-labs/remitgen/internal/database/mysql"
	"github.com/remit-labs/remitgen/internal/database/postgres"
	"github.com/remit-labs/remitgen/internal/database/sqlite"
)

func NewAdapter(provider string) Adapter {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return mysql.New()
	}
}
