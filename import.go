package sheetbind

// import.go implements the inbound path: open workbook, reconcile the
// header row against the schema, enforce the row ceiling, decode each data
// row into a record, and run every decoded record through the record
// validator. The whole path is synchronous and holds no state between
// calls; each call derives its own descriptors and closes its own workbook
// handle on every exit path.

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Option adjusts one import call.
type Option func(*importOptions)

type importOptions struct {
	validator RecordValidator
}

// WithValidator substitutes the record validator used for decoded records.
// The default is NewStructValidator.
func WithValidator(v RecordValidator) Option {
	return func(o *importOptions) { o.validator = v }
}

// Import reads a workbook from r and binds the schema's sheet to records of
// T. See ImportResult for the three outcomes: header mismatch
// (TemplateValid=false, nil error), fatal error (nil result, non-nil
// error), or decoded records with per-row validation reports.
func Import[T any](r io.Reader, s Schema[T], opts ...Option) (*ImportResult[T], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("sheetbind: open workbook: %w", err)
	}
	defer f.Close()
	return importWorkbook(f, s, opts)
}

// ImportFile is Import for a workbook on disk.
func ImportFile[T any](path string, s Schema[T], opts ...Option) (*ImportResult[T], error) {
	if path == "" {
		return nil, &SchemaError{Type: typeName[T](), Reason: "empty workbook path"}
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheetbind: open workbook %s: %w", path, err)
	}
	defer f.Close()
	return importWorkbook(f, s, opts)
}

func importWorkbook[T any](f *excelize.File, s Schema[T], opts []Option) (*ImportResult[T], error) {
	o := importOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.validator == nil {
		o.validator = NewStructValidator()
	}

	desc, err := s.descriptors()
	if err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(s.Sheet)
	if err != nil {
		return nil, fmt.Errorf("sheetbind: look up sheet %q: %w", s.Sheet, err)
	}
	if idx < 0 {
		return nil, &SchemaError{Type: typeName[T](), Reason: fmt.Sprintf("sheet %q not found", s.Sheet)}
	}

	rows, err := f.GetRows(s.Sheet)
	if err != nil {
		return nil, fmt.Errorf("sheetbind: read sheet %q: %w", s.Sheet, err)
	}

	if len(rows) == 0 || !headerMatches(rows[0], desc) {
		return &ImportResult[T]{TemplateValid: false}, nil
	}

	dataRows := rows[1:]
	if limit := s.rowLimit(); len(dataRows) > limit {
		return nil, &LimitError{Limit: limit, Rows: len(dataRows)}
	}

	pos := columnPositions(desc)
	result := &ImportResult[T]{TemplateValid: true}

	for i, row := range dataRows {
		if blankRow(row) {
			continue
		}

		var rec T
		for _, col := range s.Columns {
			text := cellAt(row, pos[col.Name])
			if err := col.Bind.apply(&rec, text); err != nil {
				if ce, ok := err.(*ChoiceError); ok {
					ce.Column = col.Display
					ce.Row = i + 2 // header is sheet row 1
				}
				return nil, err
			}
		}

		result.Records = append(result.Records, rec)
		if viols := o.validator.Validate(rec); len(viols) > 0 {
			result.Reports = append(result.Reports, buildReport(len(result.Records), viols, desc))
		}
	}

	return result, nil
}

// headerMatches reports whether the header row carries each descriptor's
// expected text at its exact position. Comparison is exact string equality;
// the first mismatch short-circuits.
func headerMatches(header []string, desc []ColumnDescriptor) bool {
	for i, d := range desc {
		if cellAt(header, i+1) != d.Header() {
			return false
		}
	}
	return true
}

// blankRow reports whether every cell in the row renders to empty text.
// Blank rows contribute nothing and do not consume a record index.
func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// cellAt returns the cell text at a 1-based column position, or empty text
// when the row is shorter than the schema.
func cellAt(row []string, pos int) string {
	if pos < 1 || pos > len(row) {
		return ""
	}
	return row[pos-1]
}
