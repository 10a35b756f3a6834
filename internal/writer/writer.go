// Package writer serialises pipeline rows.
package writer

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rxtech-lab/argo-indicators/internal/config"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// RowWriter defines the interface for writing indicator rows
type RowWriter interface {
	// WriteHeader writes the column names once, before any row
	WriteHeader(columns []string) error

	// WriteRow writes one bar's values
	WriteRow(row types.IndicatorRow) error

	// Close flushes buffered output and releases the destination
	Close() error
}

// New opens the destination described by output. An empty path writes to stdout,
// which is never closed. The format is checked before any file is created.
func New(output config.Output) (RowWriter, error) {
	var build func(dst io.Writer, closer io.Closer) RowWriter

	switch output.Format {
	case config.OutputFormatCSV:
		build = func(dst io.Writer, closer io.Closer) RowWriter { return NewCSVWriter(dst, closer) }
	case config.OutputFormatJSONLines:
		build = func(dst io.Writer, closer io.Closer) RowWriter { return NewJSONLinesWriter(dst, closer) }
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unsupported output format %q", output.Format)
	}

	if output.Path == "" {
		return build(os.Stdout, nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(output.Path), 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWriteFailed, "failed to create output directory", err)
	}

	file, err := os.Create(output.Path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeOutputWriteFailed, err, "failed to create output file %s", output.Path)
	}

	return build(file, file), nil
}
