// Package trace turns simulation events into flat records for CSV export
// and computes summary statistics over a run.
package trace

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// Record is one event in CSV form.
type Record struct {
	Frame  int    `csv:"frame"`
	Kind   string `csv:"kind"`
	X      int    `csv:"x"`
	Y      int    `csv:"y"`
	Detail string `csv:"detail"`
}

// FromEvents converts events in order.
func FromEvents(events []core.Event) []Record {
	records := make([]Record, 0, len(events))
	for _, e := range events {
		records = append(records, Record{
			Frame:  e.Frame,
			Kind:   e.Kind.String(),
			X:      e.Pos.X,
			Y:      e.Pos.Y,
			Detail: e.Detail,
		})
	}
	return records
}

// WriteCSV writes records with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		if _, err := io.WriteString(w, "frame,kind,x,y,detail\n"); err != nil {
			return fmt.Errorf("trace: write header: %w", err)
		}
		return nil
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("trace: write csv: %w", err)
	}
	return nil
}

// ReadCSV parses records written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("trace: read csv: %w", err)
	}
	return records, nil
}
