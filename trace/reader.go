package trace

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Reader can list the content of a trace.
type Reader interface {
	// ListComponents returns all the locations used in the trace, sorted.
	ListComponents(ctx context.Context) ([]string, error)

	// ListTasks returns the tasks that match the query, sorted by start time.
	ListTasks(ctx context.Context, query TaskQuery) ([]Task, error)

	Close() error
}

// Open opens a trace file. The format is picked by the file extension:
// .sqlite, .sqlite3 and .db are SQLite databases, .json is a JSON array of
// tasks and .csv is a CSV table.
func Open(path string) (Reader, error) {
	var (
		r   Reader
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".sqlite3", ".db":
		r, err = NewSQLiteReader(path)
	case ".json":
		r, err = NewJSONReader(path)
	case ".csv":
		r, err = NewCSVReader(path)
	default:
		return nil, fmt.Errorf("unknown trace format %q", path)
	}

	if err != nil {
		return nil, err
	}

	return r, nil
}

// LoadAll reads the tasks matching the query from several trace files
// concurrently. Tasks are returned grouped by file, in the order of paths.
func LoadAll(ctx context.Context, paths []string, query TaskQuery) ([]Task, error) {
	results := make([][]Task, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			r, err := Open(path)
			if err != nil {
				return err
			}
			defer r.Close()

			tasks, err := r.ListTasks(gctx, query)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			results[i] = tasks

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Task
	for _, tasks := range results {
		all = append(all, tasks...)
	}

	return all, nil
}

// memoryReader serves queries from tasks held in memory.
type memoryReader struct {
	tasks []Task
}

func newMemoryReader(tasks []Task) *memoryReader {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	return &memoryReader{tasks: sorted}
}

func (r *memoryReader) ListComponents(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	components := []string{}

	for _, t := range r.tasks {
		if !seen[t.Where] {
			seen[t.Where] = true
			components = append(components, t.Where)
		}
	}

	sort.Strings(components)

	return components, nil
}

func (r *memoryReader) ListTasks(ctx context.Context, query TaskQuery) ([]Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tasks := []Task{}
	for _, t := range r.tasks {
		if query.Match(t) {
			tasks = append(tasks, t)
		}
	}

	return tasks, nil
}

func (r *memoryReader) Close() error {
	return nil
}
