package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONReader reads a trace stored as a JSON array of tasks.
type JSONReader struct {
	*memoryReader
}

// NewJSONReader loads a JSON trace file.
func NewJSONReader(path string) (*JSONReader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &JSONReader{memoryReader: newMemoryReader(tasks)}, nil
}
