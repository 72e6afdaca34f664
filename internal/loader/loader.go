package loader

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/remit-labs/remitgen/internal/model"
	"github.com/remit-labs/remitgen/internal/schema"
)

const defaultBatchSize = 100

// Loader applies the dataset schema and bulk-inserts generated records.
// It works against any database/sql connection; the squirrel builder
// carries the provider's placeholder format.
type Loader struct {
	db        *sql.DB
	qb        squirrel.StatementBuilderType
	batchSize int
}

func New(db *sql.DB, qb squirrel.StatementBuilderType) *Loader {
	return &Loader{
		db:        db,
		qb:        qb,
		batchSize: defaultBatchSize,
	}
}

func (l *Loader) SetBatchSize(n int) {
	if n > 0 {
		l.batchSize = n
	}
}

// ApplySchema executes the dialect's DDL statement by statement.
func (l *Loader) ApplySchema(ctx context.Context, d schema.Dialect) error {
	for _, stmt := range schema.Statements(schema.DDL(d)) {
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// Load inserts all three collections inside one transaction. Agents and
// clients go first so the transaction foreign keys resolve.
func (l *Loader) Load(ctx context.Context, ds *model.Dataset) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	agentRows := make([][]interface{}, 0, len(ds.Agents))
	for _, a := range ds.Agents {
		agentRows = append(agentRows, a.Values())
	}
	if err := l.insertTable(ctx, tx, model.TableAgents, model.AgentColumns(), agentRows); err != nil {
		return err
	}

	clientRows := make([][]interface{}, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		clientRows = append(clientRows, c.Values())
	}
	if err := l.insertTable(ctx, tx, model.TableClients, model.ClientColumns(), clientRows); err != nil {
		return err
	}

	txRows := make([][]interface{}, 0, len(ds.Transactions))
	for _, t := range ds.Transactions {
		txRows = append(txRows, t.Values())
	}
	if err := l.insertTable(ctx, tx, model.TableTransactions, model.TransactionColumns(), txRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (l *Loader) insertTable(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}) error {
	color.Cyan("  📝 Loading %s (%d records)...", table, len(rows))

	for start := 0; start < len(rows); start += l.batchSize {
		end := start + l.batchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := l.qb.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert batch into %s: %w", table, err)
		}
	}

	color.Green("  ✅ %s loaded", table)
	return nil
}
