package repositories

import (
	"github.com/Masterminds/squirrel"
)

// ownedDeleteQuery builds the DELETE used for student child rows. The row id
// and the owning student's email must both match, so a mismatched pair
// touches nothing.
func ownedDeleteQuery(sb squirrel.StatementBuilderType, table string, id int64, studentEmail string) (string, []any, error) {
	return sb.Delete(table).
		Where(squirrel.Eq{"id": id, "student_email": studentEmail}).
		ToSql()
}
