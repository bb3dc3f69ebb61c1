package rubriclist

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"strings"
)

// Fetch runs the caller's listing query on db and yields one Record per
// row. Rows are closed when iteration stops. The query itself, with any
// ordering and paging, is owned by the caller.
func Fetch(ctx context.Context, db *sql.DB, query string, args ...any) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(Record{}, fmt.Errorf("query rubrics: %w", err))
			return
		}
		defer rows.Close()
		for rec, err := range Scan(rows) {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Scan maps result columns onto Record fields by name, case-insensitively.
// Unknown columns are kept in Record.Extra and NULLs become zero values.
// Scan stops after the first error. The caller closes rows.
func Scan(rows *sql.Rows) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cols, err := rows.Columns()
		if err != nil {
			yield(Record{}, fmt.Errorf("read columns: %w", err))
			return
		}
		for rows.Next() {
			rec, err := scanRecord(rows, cols)
			if !yield(rec, err) || err != nil {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(Record{}, fmt.Errorf("read rows: %w", err))
		}
	}
}

// recordField is a scan target bound to one column.
type recordField struct {
	ints *sql.NullInt64
	strs *sql.NullString
	set  func(*Record)
}

func scanRecord(rows *sql.Rows, cols []string) (Record, error) {
	var rec Record
	fields := make([]recordField, len(cols))
	dest := make([]any, len(cols))
	for i, col := range cols {
		fields[i] = bindField(strings.ToLower(col))
		if fields[i].ints != nil {
			dest[i] = fields[i].ints
		} else {
			dest[i] = fields[i].strs
		}
	}
	if err := rows.Scan(dest...); err != nil {
		return Record{}, fmt.Errorf("scan rubric: %w", err)
	}
	for _, f := range fields {
		f.set(&rec)
	}
	return rec, nil
}

func bindField(col string) recordField {
	intField := func(set func(*Record, int64)) recordField {
		n := new(sql.NullInt64)
		return recordField{ints: n, set: func(r *Record) { set(r, n.Int64) }}
	}
	strField := func(set func(*Record, string)) recordField {
		s := new(sql.NullString)
		return recordField{strs: s, set: func(r *Record) { set(r, s.String) }}
	}

	switch col {
	case "id":
		return intField(func(r *Record, v int64) { r.ID = v })
	case "name":
		return strField(func(r *Record, v string) { r.Name = v })
	case "timemodified":
		return intField(func(r *Record, v int64) { r.TimeModified = v })
	case "status":
		return intField(func(r *Record, v int64) { r.Status = Status(v) })
	case "modtype":
		return strField(func(r *Record, v string) { r.ModType = v })
	case "areaid":
		return intField(func(r *Record, v int64) { r.AreaID = v })
	case "courseid":
		return intField(func(r *Record, v int64) { r.CourseID = v })
	case "cmid":
		return intField(func(r *Record, v int64) { r.CMID = v })
	case "course":
		return strField(func(r *Record, v string) { r.Course = v })
	case "assignment":
		return strField(func(r *Record, v string) { r.Assignment = v })
	case "forum":
		return strField(func(r *Record, v string) { r.Forum = v })
	default:
		s := new(sql.NullString)
		return recordField{strs: s, set: func(r *Record) {
			if !s.Valid {
				return
			}
			if r.Extra == nil {
				r.Extra = make(map[string]string)
			}
			r.Extra[col] = s.String
		}}
	}
}
