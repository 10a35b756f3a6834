package writer

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/shopspring/decimal"
)

type jsonRow struct {
	Time   time.Time                                   `json:"time"`
	Symbol string                                      `json:"symbol,omitempty"`
	Values map[string]optional.Option[decimal.Decimal] `json:"values"`
}

// JSONLinesWriter writes one JSON object per bar. Values are keyed by column and
// pending values are null.
type JSONLinesWriter struct {
	buf     *bufio.Writer
	encoder *json.Encoder
	closer  io.Closer
	columns []string
}

// NewJSONLinesWriter writes to w. closer, if not nil, is closed by Close.
func NewJSONLinesWriter(w io.Writer, closer io.Closer) *JSONLinesWriter {
	buf := bufio.NewWriter(w)

	return &JSONLinesWriter{
		buf:     buf,
		encoder: json.NewEncoder(buf),
		closer:  closer,
	}
}

// WriteHeader records the column names; JSON lines carry no header of their own.
func (w *JSONLinesWriter) WriteHeader(columns []string) error {
	w.columns = columns
	return nil
}

func (w *JSONLinesWriter) WriteRow(row types.IndicatorRow) error {
	if len(w.columns) != len(row.Values) {
		return errors.Newf(errors.ErrCodeOutputWriteFailed, "row has %d values but the header has %d columns", len(row.Values), len(w.columns))
	}

	out := jsonRow{
		Time:   row.Time,
		Symbol: row.Symbol,
		Values: make(map[string]optional.Option[decimal.Decimal], len(w.columns)),
	}
	for i, column := range w.columns {
		out.Values[column] = row.Values[i]
	}

	if err := w.encoder.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to write JSON row", err)
	}

	return nil
}

func (w *JSONLinesWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to flush JSON output", err)
	}

	if w.closer != nil {
		return w.closer.Close()
	}

	return nil
}
