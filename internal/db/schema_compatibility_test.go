package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCompatibility(t *testing.T) {
	p := newTestPostgres(t)

	// Migrate is idempotent on an already migrated database
	require.NoError(t, p.Migrate(context.Background()))

	for _, table := range []string{"postings", "tool_results"} {
		_, err := p.db.Exec("SELECT * FROM " + table + " LIMIT 1")
		assert.NoError(t, err, "Should be able to query the %s table", table)
	}

	var columnName string
	err := p.db.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name='postings' AND column_name='skills' AND data_type='ARRAY'
	`).Scan(&columnName)
	assert.NoError(t, err, "postings.skills should be a text array")

	for _, column := range EnumColumns {
		var udt string
		err := p.db.QueryRow(`
			SELECT udt_name FROM information_schema.columns
			WHERE table_name='postings' AND column_name=$1
		`, column).Scan(&udt)
		require.NoError(t, err)
		assert.Equal(t, "e_db_"+column, udt, "postings.%s should use its enum type", column)
	}

	var constraintDef string
	err = p.db.QueryRow(`
		SELECT pg_get_constraintdef(con.oid)
		FROM pg_constraint con
		INNER JOIN pg_class rel ON rel.oid = con.conrelid
		WHERE rel.relname = 'tool_results' AND con.contype = 'f'
	`).Scan(&constraintDef)
	require.NoError(t, err, "tool_results should reference postings")
	assert.Contains(t, constraintDef, "REFERENCES postings(id)")
}
