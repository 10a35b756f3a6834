package writer

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// CSVWriter writes one record per bar: time, symbol, then one cell per column.
// Pending values are written as empty cells.
type CSVWriter struct {
	csv    *csv.Writer
	closer io.Closer
	record []string
}

// NewCSVWriter writes to w. closer, if not nil, is closed by Close.
func NewCSVWriter(w io.Writer, closer io.Closer) *CSVWriter {
	return &CSVWriter{
		csv:    csv.NewWriter(w),
		closer: closer,
	}
}

func (w *CSVWriter) WriteHeader(columns []string) error {
	header := append([]string{"time", "symbol"}, columns...)
	w.record = make([]string, len(header))

	if err := w.csv.Write(header); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to write CSV header", err)
	}

	return nil
}

func (w *CSVWriter) WriteRow(row types.IndicatorRow) error {
	if len(w.record) != len(row.Values)+2 {
		return errors.Newf(errors.ErrCodeOutputWriteFailed, "row has %d values but the header has %d columns", len(row.Values), len(w.record)-2)
	}

	w.record[0] = row.Time.Format(time.RFC3339)
	w.record[1] = row.Symbol

	for i, v := range row.Values {
		w.record[i+2] = ""
		if value, err := v.Take(); err == nil {
			w.record[i+2] = value.String()
		}
	}

	if err := w.csv.Write(w.record); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to write CSV row", err)
	}

	return nil
}

func (w *CSVWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to flush CSV output", err)
	}

	if w.closer != nil {
		return w.closer.Close()
	}

	return nil
}
