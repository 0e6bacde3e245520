package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The delete for a student's child rows must carry both the id and the
// owner-email predicate, so a student can never remove another's rows.
func TestOwnedDeleteQuery(t *testing.T) {
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	tests := []struct {
		table   string
		wantSQL string
	}{
		{"skills", "DELETE FROM skills WHERE id = $1 AND student_email = $2"},
		{"achievements", "DELETE FROM achievements WHERE id = $1 AND student_email = $2"},
		{"certifications", "DELETE FROM certifications WHERE id = $1 AND student_email = $2"},
	}

	for _, tc := range tests {
		t.Run(tc.table, func(t *testing.T) {
			sql, args, err := ownedDeleteQuery(sb, tc.table, 42, "arun.student@gmail.com")
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, []any{int64(42), "arun.student@gmail.com"}, args)
		})
	}
}
