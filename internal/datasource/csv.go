// Package datasource reads bar streams for the indicator pipeline.
package datasource

import (
	"iter"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// MarketDataSource yields bars in file order. Each element carries either a bar or
// the reason it was rejected; rejected bars are not fed to indicators.
type MarketDataSource interface {
	Iterator(symbol string) iter.Seq2[types.MarketData, error]
	Count() (int, error)
}

// CSVSource reads bars from a CSV file with the header
// time,symbol,open,high,low,close,volume. Times are RFC 3339.
type CSVSource struct {
	FilePath string
	cache    []types.MarketData
}

// NewCSVSource creates a source for filePath. The file is read on first use.
func NewCSVSource(filePath string) *CSVSource {
	return &CSVSource{
		FilePath: filePath,
	}
}

func (s *CSVSource) load() error {
	if s.cache != nil {
		return nil
	}

	csvFile, err := os.Open(s.FilePath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to open CSV file %s", s.FilePath)
	}
	defer csvFile.Close()

	var bars []types.MarketData
	if err := gocsv.UnmarshalFile(csvFile, &bars); err != nil {
		return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "failed to unmarshal CSV %s", s.FilePath)
	}

	if bars == nil {
		bars = []types.MarketData{}
	}

	s.cache = bars

	return nil
}

// Count returns the number of rows in the file, before symbol filtering.
func (s *CSVSource) Count() (int, error) {
	if err := s.load(); err != nil {
		return 0, err
	}

	return len(s.cache), nil
}

// Iterator yields the bars for symbol in file order. An empty symbol, or a row
// without one, matches everything. Rows failing validation are yielded with an
// ErrCodeInvalidBar error. A file that cannot be read yields a single error.
func (s *CSVSource) Iterator(symbol string) iter.Seq2[types.MarketData, error] {
	return func(yield func(types.MarketData, error) bool) {
		if err := s.load(); err != nil {
			yield(types.MarketData{}, err)
			return
		}

		for _, bar := range s.cache {
			if symbol != "" && bar.Symbol != "" && bar.Symbol != symbol {
				continue
			}

			if !yield(bar, bar.Validate()) {
				return
			}
		}
	}
}

// ClearCache drops the loaded rows so the next use re-reads the file.
func (s *CSVSource) ClearCache() {
	s.cache = nil
}
