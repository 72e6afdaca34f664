package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDDLShape(t *testing.T) {
	for _, dialect := range []Dialect{MySQL, Postgres, SQLite} {
		t.Run(string(dialect), func(t *testing.T) {
			ddl := DDL(dialect)

			assert.Equal(t, 3, strings.Count(ddl, "CREATE TABLE"))
			assert.Contains(t, ddl, "CREATE TABLE Agents")
			assert.Contains(t, ddl, "CREATE TABLE Clients")
			assert.Contains(t, ddl, "CREATE TABLE Transactions")
			assert.Equal(t, 3, strings.Count(ddl, "PRIMARY KEY"))
			assert.Equal(t, 2, strings.Count(ddl, "FOREIGN KEY"))
			assert.Contains(t, ddl, "REFERENCES Clients(ClientID)")
			assert.Contains(t, ddl, "REFERENCES Agents(AgentID)")

			// Schema only: the dump never carries data rows.
			assert.NotContains(t, ddl, "INSERT")
		})
	}
}

func TestDialectFor(t *testing.T) {
	cases := map[string]Dialect{
		"mysql":      MySQL,
		"postgres":   Postgres,
		"postgresql": Postgres,
		"sqlite":     SQLite,
		"sqlite3":    SQLite,
	}
	for provider, want := range cases {
		got, err := DialectFor(provider)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := DialectFor("mongodb")
	assert.Error(t, err)
}

func TestStatements(t *testing.T) {
	for _, dialect := range []Dialect{MySQL, Postgres, SQLite} {
		stmts := Statements(DDL(dialect))
		require.Len(t, stmts, 3, "dialect %s", dialect)
		assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE Agents"))
		assert.True(t, strings.HasPrefix(stmts[1], "CREATE TABLE Clients"))
		assert.True(t, strings.HasPrefix(stmts[2], "CREATE TABLE Transactions"))
	}
}

func TestStatementsIgnoresQuotedSemicolons(t *testing.T) {
	sql := `CREATE TABLE t (v VARCHAR(10) DEFAULT 'a;b');
-- trailing comment; still a comment
CREATE TABLE u (w INT);`

	stmts := Statements(sql)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "'a;b'")
}

func TestWriteDump(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mysql_dump.sql")

	require.NoError(t, WriteDump(path, MySQL))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DDL(MySQL), string(data))
}
