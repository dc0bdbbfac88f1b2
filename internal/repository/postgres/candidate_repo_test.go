package postgres_test

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// The candidate repository reads and writes the skills text[] column
// through pq.Array, which understands the text wire format only. The
// pool config forces the simple protocol for exactly that reason, so
// these tests pin the decode and encode paths the repository relies on.
func TestSkillsColumnCodec(t *testing.T) {
	m := pgtype.NewMap()

	t.Run("Should scan a text-format skills column", func(t *testing.T) {
		var skills []string
		err := m.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, []byte(`{python,fastapi,sqlalchemy}`), pq.Array(&skills))

		assert.NoError(t, err)
		assert.Equal(t, []string{"python", "fastapi", "sqlalchemy"}, skills)
	})

	t.Run("Should scan quoted elements containing spaces", func(t *testing.T) {
		var skills []string
		err := m.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, []byte(`{"react native",go}`), pq.Array(&skills))

		assert.NoError(t, err)
		assert.Equal(t, []string{"react native", "go"}, skills)
	})

	t.Run("Should scan an empty skills column to an empty slice", func(t *testing.T) {
		var skills []string
		err := m.Scan(pgtype.TextArrayOID, pgtype.TextFormatCode, []byte(`{}`), pq.Array(&skills))

		assert.NoError(t, err)
		assert.Len(t, skills, 0)
	})

	t.Run("Should render a skills filter parameter in array literal form", func(t *testing.T) {
		v, err := pq.Array([]string{"react", "react native"}).Value()

		assert.NoError(t, err)
		assert.Equal(t, `{"react","react native"}`, v)
	})
}
