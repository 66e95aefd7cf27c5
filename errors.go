package sheetbind

// errors.go defines the engine's error types. Configuration problems
// (SchemaError) and data-shape problems (LimitError, ChoiceError) are
// distinct types so callers can branch with errors.As; all of them carry
// enough context to name the offending type, field, or limit in logs and
// user-facing messages.

import (
	"fmt"
	"strings"
)

// SchemaError reports missing or invalid schema metadata, or a workbook
// that lacks the configured sheet. Always fatal: the import aborts before
// any data is read.
type SchemaError struct {
	Type   string // record type the schema was declared for
	Field  string // offending column field name, if any
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("sheetbind: schema for %s, field %q: %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("sheetbind: schema for %s: %s", e.Type, e.Reason)
}

// LimitError reports a sheet whose data rows exceed the schema's row
// ceiling. Fatal; raised once, before any row is decoded.
type LimitError struct {
	Limit int // effective ceiling after clamping
	Rows  int // data rows present in the sheet
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("sheetbind: sheet has %d data rows, limit is %d", e.Rows, e.Limit)
}

// ChoiceError reports an enumeration cell whose text is not one of the
// column's declared labels. Fatal: the whole import aborts and no partial
// records or reports are returned. Other field-level problems are instead
// deferred to record validation; see the package doc for this asymmetry.
type ChoiceError struct {
	Column  string // display name of the offending column
	Row     int    // 1-based sheet row of the offending cell
	Value   string
	Choices []string
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("sheetbind: row %d, column %q: value %q is not one of the allowed choices [%s]",
		e.Row, e.Column, e.Value, strings.Join(e.Choices, ", "))
}
