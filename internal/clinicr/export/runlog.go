package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// RunSummary is one line of the generation run log.
type RunSummary struct {
	RunID       string         `json:"run_id"`
	GeneratedAt string         `json:"generated_at"`
	Seed        uint64         `json:"seed"`
	Anchor      string         `json:"anchor"`
	Format      string         `json:"format"`
	Output      string         `json:"output,omitempty"`
	Head        string         `json:"fingerprint_head"`
	Counts      map[string]int `json:"counts"`
}

// NewRunSummary stamps a run with a fresh id and the current time.
func NewRunSummary(s Summary, format, output, head string) RunSummary {
	counts := make(map[string]int, len(s.Collections))
	for _, c := range s.Collections {
		counts[c.Name] = c.Count
	}
	return RunSummary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Seed:        s.Seed,
		Anchor:      s.Today,
		Format:      format,
		Output:      output,
		Head:        head,
		Counts:      counts,
	}
}

// AppendRunLog appends rs as one JSON line to the file at path, creating
// it if needed. An empty path disables the log.
func AppendRunLog(path string, rs RunSummary) error {
	if path == "" {
		return nil
	}
	if rs.RunID == "" {
		rs.RunID = uuid.NewString()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("encode run summary: %w", err)
	}
	if _, err := fmt.Fprintln(f, string(data)); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
