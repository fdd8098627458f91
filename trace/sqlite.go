package trace

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteReader reads tasks from the trace table of a SQLite database.
type SQLiteReader struct {
	*sql.DB

	filename string
}

// NewSQLiteReader opens an existing SQLite trace.
func NewSQLiteReader(filename string) (*SQLiteReader, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}

	return &SQLiteReader{DB: db, filename: filename}, nil
}

// ListComponents returns a list of components in the trace.
func (r *SQLiteReader) ListComponents(ctx context.Context) ([]string, error) {
	rows, err := r.QueryContext(ctx,
		"SELECT DISTINCT location FROM trace ORDER BY location")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := []string{}
	for rows.Next() {
		var component string
		if err := rows.Scan(&component); err != nil {
			return nil, err
		}

		components = append(components, component)
	}

	return components, rows.Err()
}

// ListTasks returns a list of tasks in the trace according to the given query.
func (r *SQLiteReader) ListTasks(ctx context.Context, query TaskQuery) ([]Task, error) {
	sqlStr, args := prepareTaskQuery(query)

	rows, err := r.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t := Task{}
		err := rows.Scan(
			&t.ID,
			&t.ParentID,
			&t.Kind,
			&t.What,
			&t.Where,
			&t.StartTime,
			&t.EndTime,
		)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func prepareTaskQuery(query TaskQuery) (string, []any) {
	sqlStr := `
		SELECT
			task_id,
			parent_id,
			kind,
			what,
			location,
			start_time,
			end_time
		FROM trace
		WHERE 1=1
	`

	var args []any

	if query.ID != "" {
		sqlStr += " AND task_id = ?"
		args = append(args, query.ID)
	}

	if query.ParentID != "" {
		sqlStr += " AND parent_id = ?"
		args = append(args, query.ParentID)
	}

	if query.Kind != "" {
		sqlStr += " AND kind = ?"
		args = append(args, query.Kind)
	}

	if query.Where != "" {
		sqlStr += " AND location = ?"
		args = append(args, query.Where)
	}

	if query.EnableTimeRange {
		sqlStr += " AND end_time > ? AND start_time < ?"
		args = append(args, query.StartTime, query.EndTime)
	}

	sqlStr += " ORDER BY start_time"

	return sqlStr, args
}
