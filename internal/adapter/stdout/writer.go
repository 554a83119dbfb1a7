package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/livable-cities/internal/domain"
)

// Writer dumps a ranking as indented JSON. It implements pipeline.Loader.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer on out, usually os.Stdout.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Name identifies the sink in logs and metrics.
func (w *Writer) Name() string { return "stdout" }

// Load writes the ranking, cities in rank order.
func (w *Writer) Load(_ context.Context, ranking domain.Ranking) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ranking); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return nil
}
