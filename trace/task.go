// Package trace reads the task traces that the overview visualizes. Traces
// can be stored in SQLite, JSON or CSV files.
package trace

// A Task is a span of work recorded at a location. Times are in seconds.
type Task struct {
	ID        string  `json:"id"`
	ParentID  string  `json:"parent_id"`
	Kind      string  `json:"kind"`
	What      string  `json:"what"`
	Where     string  `json:"where"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Duration returns the length of the task in seconds.
func (t Task) Duration() float64 {
	return t.EndTime - t.StartTime
}

// TaskQuery is used to define the tasks to be queried. Not all the field has to
// be set. If the fields are empty, the criteria is ignored.
type TaskQuery struct {
	// Use ID to select a single task by its ID.
	ID string

	// Use ParentID to select all the tasks that are children of a task.
	ParentID string

	// Use Kind to select all the tasks that are of a kind.
	Kind string

	// Use Where to select all the tasks that are executed at a location.
	Where string

	// Enable time range selection.
	EnableTimeRange bool

	// Use StartTime to select tasks that overlaps with the given task range.
	StartTime, EndTime float64
}

// Match tells if a task satisfies the query.
func (q TaskQuery) Match(t Task) bool {
	if q.ID != "" && t.ID != q.ID {
		return false
	}

	if q.ParentID != "" && t.ParentID != q.ParentID {
		return false
	}

	if q.Kind != "" && t.Kind != q.Kind {
		return false
	}

	if q.Where != "" && t.Where != q.Where {
		return false
	}

	if q.EnableTimeRange && !(t.EndTime > q.StartTime && t.StartTime < q.EndTime) {
		return false
	}

	return true
}
