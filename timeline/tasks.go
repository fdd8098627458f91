package timeline

import (
	"math"
	"sort"

	"github.com/sarchlab/overview/trace"
)

// Options controls how tasks become lanes.
type Options struct {
	HeightMode HeightMode
}

// FromTasks builds one lane per task location, sorted by location name.
// Every distinct kind and what pair gets its own type id, numbered in order
// of first start. Task times are converted from seconds to nanoseconds.
func FromTasks(tasks []trace.Task, opts Options) *Aggregator {
	sorted := append([]trace.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	byWhere := make(map[string][]trace.Task)
	typeIDs := make(map[string]int)

	for _, t := range sorted {
		byWhere[t.Where] = append(byWhere[t.Where], t)

		key := t.Kind + "/" + t.What
		if _, ok := typeIDs[key]; !ok {
			typeIDs[key] = len(typeIDs)
		}
	}

	names := make([]string, 0, len(byWhere))
	for name := range byWhere {
		names = append(names, name)
	}

	sort.Strings(names)

	agg := NewAggregator()

	for id, name := range names {
		m := NewModel(id, name, opts.HeightMode)

		for _, t := range byWhere[name] {
			start := secondsToNS(t.StartTime)
			m.Insert(start, secondsToNS(t.EndTime)-start, typeIDs[t.Kind+"/"+t.What])
		}

		m.Finalize()
		agg.AddModel(m)
	}

	return agg
}

func secondsToNS(s float64) int64 {
	return int64(math.Round(s * 1e9))
}
