package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var csvHeader = []string{"ID", "ParentID", "Kind", "What", "Where", "Start", "End"}

// CSVReader reads a trace stored as a CSV table with the columns
// ID, ParentID, Kind, What, Where, Start, End.
type CSVReader struct {
	*memoryReader
}

// NewCSVReader loads a CSV trace file.
func NewCSVReader(path string) (*CSVReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tasks, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &CSVReader{memoryReader: newMemoryReader(tasks)}, nil
}

func parseCSV(r io.Reader) ([]Task, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	for i, name := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("column %d is %q, want %q", i, header[i], name)
		}
	}

	var tasks []Task

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		start, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: start time: %w", line, err)
		}

		end, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: end time: %w", line, err)
		}

		tasks = append(tasks, Task{
			ID:        record[0],
			ParentID:  record[1],
			Kind:      record[2],
			What:      record[3],
			Where:     record[4],
			StartTime: start,
			EndTime:   end,
		})
	}

	return tasks, nil
}
