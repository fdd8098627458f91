package trace

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteWriter is a writer that writes trace data to a SQLite database.
type SQLiteWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName    string
	tasks     []Task
	batchSize int
}

// NewSQLiteWriter creates a new SQLiteWriter. The database is created at
// path + ".sqlite3". If the path is empty, a unique name is generated.
func NewSQLiteWriter(path string) *SQLiteWriter {
	w := &SQLiteWriter{
		dbName:    path,
		batchSize: 100000,
	}

	atexit.Register(func() { _ = w.Flush() })

	return w
}

// Filename returns the name of the database file.
func (t *SQLiteWriter) Filename() string {
	return t.dbName + ".sqlite3"
}

// Init creates the database and the trace table.
func (t *SQLiteWriter) Init() error {
	if t.dbName == "" {
		t.dbName = "overview_trace_" + xid.New().String()
	}

	filename := t.Filename()
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return err
	}

	t.DB = db

	if err := t.createTable(); err != nil {
		return err
	}

	t.statement, err = t.Prepare(`
		INSERT INTO trace(
			task_id, parent_id, kind, what, location, start_time, end_time
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	return err
}

func (t *SQLiteWriter) createTable() error {
	stmts := []string{
		`create table trace
		(
			task_id    varchar(200) not null default 'default_task_id',
			parent_id  varchar(200) default 'default_parent_id',
			kind       varchar(100) default 'default_kind',
			what       varchar(100) default 'default_what',
			location   varchar(100) default 'default_location',
			start_time float        not null,
			end_time   float        default 0
		);`,
		`create index trace_start_time_index on trace (start_time);`,
		`create index trace_end_time_index on trace (end_time);`,
		`create index trace_location_index on trace (location);`,
		`create index trace_kind_index on trace (kind);`,
	}

	for _, s := range stmts {
		if _, err := t.Exec(s); err != nil {
			return fmt.Errorf("creating trace table: %w", err)
		}
	}

	return nil
}

// Write buffers a task and flushes when the batch is full.
func (t *SQLiteWriter) Write(task Task) error {
	t.tasks = append(t.tasks, task)
	if len(t.tasks) >= t.batchSize {
		return t.Flush()
	}

	return nil
}

// Flush writes all the buffered tasks to the database.
func (t *SQLiteWriter) Flush() error {
	if len(t.tasks) == 0 || t.DB == nil {
		return nil
	}

	tx, err := t.Begin()
	if err != nil {
		return err
	}

	stmt := tx.Stmt(t.statement)
	for _, task := range t.tasks {
		_, err := stmt.Exec(
			task.ID,
			task.ParentID,
			task.Kind,
			task.What,
			task.Where,
			task.StartTime,
			task.EndTime,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting task %s: %w", task.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	t.tasks = nil

	return nil
}

// Close flushes the remaining tasks and closes the database.
func (t *SQLiteWriter) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}

	if t.DB == nil {
		return nil
	}

	return t.DB.Close()
}
