// Package dataset reads review exports into raw records.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spacesedan/sentireview/internal/models"
)

var (
	// ErrNotFound is returned when the dataset file does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrFormat is returned when the file is not readable as CSV or lacks
	// the configured text column.
	ErrFormat = errors.New("dataset format error")
)

type Options struct {
	TextColumn string
	IDColumn   string
}

// Load reads every data row of the CSV at path. Empty text cells yield a
// record whose Text is nil.
func Load(path string, opts Options) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrFormat, path, err)
	}
	defer f.Close()

	records, err := Read(f, opts)
	if err != nil {
		return nil, err
	}

	slog.Info("[Dataset] Loaded reviews",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return records, nil
}

// Read parses CSV from r. The first row is the header.
func Read(r io.Reader, opts Options) ([]models.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrFormat)
		}
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}

	textIdx, idIdx := -1, -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		switch {
		case name == opts.TextColumn:
			textIdx = i
		case opts.IDColumn != "" && name == opts.IDColumn:
			idIdx = i
		}
	}
	if textIdx < 0 {
		return nil, fmt.Errorf("%w: missing column %q", ErrFormat, opts.TextColumn)
	}

	var records []models.RawRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrFormat, row, err)
		}

		rec := models.RawRecord{Row: row, ID: strconv.Itoa(row)}
		if idIdx >= 0 && idIdx < len(fields) && fields[idIdx] != "" {
			rec.ID = fields[idIdx]
		}
		if textIdx < len(fields) && fields[textIdx] != "" {
			rec.Text = fields[textIdx]
		}
		records = append(records, rec)
	}
	return records, nil
}
