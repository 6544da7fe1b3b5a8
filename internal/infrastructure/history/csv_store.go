// Package history provides the persistence adapters for calculation
// history: a CSV table store and a SQLite-backed store.
package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// Column order of the persisted table.
var columns = []string{"operation", "a", "b", "result", "timestamp"}

// CSVStore persists history as a comma-separated table with the header
// operation,a,b,result,timestamp.
type CSVStore struct {
	path     string
	encoding string
}

// NewCSVStore creates a store writing to path with the named text encoding
// (IANA name; empty means UTF-8).
func NewCSVStore(path, encodingName string) *CSVStore {
	return &CSVStore{path: path, encoding: encodingName}
}

// Save writes every record as one row, atomically: the table is written to
// a temporary file in the destination directory and then renamed into
// place, so a crash mid-write never leaves a truncated destination file.
func (s *CSVStore) Save(records []domain.Calculation) (string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}

	tmp, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	tmpPath := tmp.Name()

	if err := s.writeTable(tmp, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return "", &domain.HistoryError{Msg: "failed to save history", Err: err}
	}
	return s.path, nil
}

func (s *CSVStore) writeTable(file io.Writer, records []domain.Calculation) error {
	out := file
	if enc := s.lookupEncoding(); enc != nil {
		out = transform.NewWriter(file, enc.NewEncoder())
	}
	w := csv.NewWriter(out)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Operation,
			formatFloat(rec.A),
			formatFloat(rec.B),
			formatFloat(rec.Result),
			rec.Timestamp,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Load reads and validates the persisted table. The returned records
// preserve file row order.
func (s *CSVStore) Load() ([]domain.Calculation, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.HistoryError{Err: domain.ErrHistoryNotFound}
		}
		return nil, &domain.HistoryError{Msg: "failed to load history", Err: err}
	}

	text, err := s.decode(raw)
	if err != nil {
		return nil, &domain.HistoryError{Msg: "failed to decode history file", Err: err}
	}
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, &domain.HistoryError{Err: domain.ErrHistoryEmpty}
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &domain.HistoryError{Msg: "malformed history file", Err: err}
	}
	if len(rows) == 0 {
		return nil, &domain.HistoryError{Err: domain.ErrHistoryEmpty}
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 1 {
		return nil, &domain.HistoryError{Err: domain.ErrHistoryEmpty}
	}

	records := make([]domain.Calculation, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := parseRow(row, index)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Path returns the backing file path.
func (s *CSVStore) Path() string { return s.path }

// decode applies the configured encoding and falls back once to a
// BOM-tolerant UTF-8 decode.
func (s *CSVStore) decode(raw []byte) ([]byte, error) {
	if enc := s.lookupEncoding(); enc != nil {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil {
			return stripBOM(decoded), nil
		}
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// lookupEncoding resolves the configured encoding name. UTF-8 (and unknown
// names) return nil, meaning bytes pass through untransformed.
func (s *CSVStore) lookupEncoding() encoding.Encoding {
	name := strings.TrimSpace(s.encoding)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil
	}
	return enc
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &domain.HistoryError{
			Msg: fmt.Sprintf("malformed history file: missing columns %v", missing),
		}
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (domain.Calculation, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	a, err := parseFloat(field("a"), "a")
	if err != nil {
		return domain.Calculation{}, err
	}
	b, err := parseFloat(field("b"), "b")
	if err != nil {
		return domain.Calculation{}, err
	}
	result, err := parseFloat(field("result"), "result")
	if err != nil {
		return domain.Calculation{}, err
	}

	return domain.Calculation{
		Operation: field("operation"),
		A:         a,
		B:         b,
		Result:    result,
		Timestamp: field("timestamp"),
	}, nil
}

func parseFloat(value, column string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &domain.HistoryError{
			Msg: fmt.Sprintf("malformed history file: invalid value %q for column %s", value, column),
		}
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var _ ports.HistoryStore = (*CSVStore)(nil)
