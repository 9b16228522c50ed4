package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spacesedan/reviewlens/internal/metrics"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

type loadOptions struct {
	sheet  string
	logger *slog.Logger
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithSheet selects the worksheet read from an XLSX file. The first sheet is
// used by default.
func WithSheet(name string) LoadOption {
	return func(o *loadOptions) {
		o.sheet = name
	}
}

func WithLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// FormatOf picks the reader for path from its extension.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Load reads a tabular review file. The first row is the header. A missing
// file yields a *NotFoundError and any other failure an *IOError.
func Load(path string, opts ...LoadOption) (*Dataset, error) {
	o := loadOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.DatasetLoadErrors.WithLabelValues("not_found").Inc()
			return nil, &NotFoundError{Path: path}
		}
		return nil, loadFailed(path, err)
	}
	if info.IsDir() {
		return nil, loadFailed(path, fmt.Errorf("%s is a directory", path))
	}

	format := FormatOf(path)

	var header []string
	var records [][]string
	switch format {
	case FormatXLSX:
		header, records, err = readXLSX(path, o.sheet)
	default:
		header, records, err = readCSV(path)
	}
	if err != nil {
		return nil, loadFailed(path, err)
	}

	d := New(path, header, records)
	metrics.DatasetsLoaded.WithLabelValues(format).Inc()

	o.logger.Info("[ReviewDataset] Dataset loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("rows", d.Len()),
		slog.Int("columns", len(d.Columns)))

	return d, nil
}

func loadFailed(path string, err error) error {
	metrics.DatasetLoadErrors.WithLabelValues("io").Inc()
	return &IOError{Path: path, Err: err}
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = cleanHeader(header)

	var records [][]string
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if err := checkWidth(header, rec, line); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}

	return header, records, nil
}

func readXLSX(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := cleanHeader(rows[0])
	for i, rec := range rows[1:] {
		if err := checkWidth(header, rec, i+2); err != nil {
			return nil, nil, err
		}
	}

	return header, rows[1:], nil
}

// checkWidth rejects a record with more cells than the header. Shorter
// records are allowed; their trailing cells read as missing.
func checkWidth(header, rec []string, line int) error {
	if len(rec) > len(header) {
		return fmt.Errorf("line %d: expected at most %d fields, saw %d", line, len(header), len(rec))
	}
	return nil
}

// cleanHeader trims header cells and drops a UTF-8 byte order mark left by
// spreadsheet exports.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
