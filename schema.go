package sheetbind

// schema.go declares the per-record-type schema model: the Schema literal a
// caller writes once per record type, and the typed cell bindings that
// resolve coercion logic at declaration time rather than per cell.

import (
	"time"

	"github.com/shopspring/decimal"
)

// ColumnKind identifies the semantic type of a column's cells.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindBool
	KindInt
	KindInt64
	KindFloat
	KindDecimal
	KindDate
	KindEnum
)

// Schema describes how one sheet maps onto the record type T.
// Declare it once per record type and treat it as read-only afterward;
// concurrent imports over the same Schema are safe.
type Schema[T any] struct {
	// Sheet is the worksheet name the importer looks up and the template
	// emitter creates. Must be non-empty.
	Sheet string

	// MaxRows is the largest number of data rows an import will accept.
	// Zero means the ceiling (65000); values above the ceiling are clamped.
	MaxRows int

	// Columns lists the sheet's columns in order. Column order is
	// load-bearing: it defines the header layout and the cell positions
	// the decoder reads.
	Columns []Column[T]
}

// Column defines a single sheet column bound to one field of T.
type Column[T any] struct {
	Name        string     // Field identifier, matched against validator field names
	Display     string     // Header cell text (required)
	Description string     // Optional header comment text
	Author      string     // Optional header comment author
	Required    bool       // Marks the header cell in generated templates
	Bind        Binding[T] // Cell decode behavior
}

// Binding carries a column's resolved decode behavior: its kind, its ordered
// choice labels (enum and bool columns only), and a setter that applies one
// cell's text to a record. Build one with the typed constructors below.
type Binding[T any] struct {
	kind    ColumnKind
	choices []string
	apply   func(rec *T, text string) error
}

// Kind returns the binding's column kind.
func (b Binding[T]) Kind() ColumnKind { return b.kind }

// Choice pairs a display label with the underlying value it decodes to.
type Choice[V any] struct {
	Label string
	Value V
}

// Text binds a column to a string field. The cell's text is assigned as-is,
// including empty.
func Text[T any](set func(rec *T, v string)) Binding[T] {
	return Binding[T]{
		kind: KindText,
		apply: func(rec *T, text string) error {
			set(rec, text)
			return nil
		},
	}
}

// Bool binds a column to a bool field with localized yes/no labels. A cell
// equal to the yes label decodes to true; any other text, including empty,
// decodes to false. Generated templates constrain the column to [yes, no].
func Bool[T any](yes, no string, set func(rec *T, v bool)) Binding[T] {
	return Binding[T]{
		kind:    KindBool,
		choices: []string{yes, no},
		apply: func(rec *T, text string) error {
			set(rec, text == yes)
			return nil
		},
	}
}

// Int binds a column to an int field. Unparseable cells decode to zero;
// flagging them is the record validator's job.
func Int[T any](set func(rec *T, v int)) Binding[T] {
	return Binding[T]{
		kind: KindInt,
		apply: func(rec *T, text string) error {
			v, _ := parseInt(text)
			set(rec, int(v))
			return nil
		},
	}
}

// Int64 binds a column to an int64 field with the same parse-or-zero policy
// as Int.
func Int64[T any](set func(rec *T, v int64)) Binding[T] {
	return Binding[T]{
		kind: KindInt64,
		apply: func(rec *T, text string) error {
			v, _ := parseInt(text)
			set(rec, v)
			return nil
		},
	}
}

// Float64 binds a column to a float64 field with the parse-or-zero policy.
func Float64[T any](set func(rec *T, v float64)) Binding[T] {
	return Binding[T]{
		kind: KindFloat,
		apply: func(rec *T, text string) error {
			v, _ := parseFloat(text)
			set(rec, v)
			return nil
		},
	}
}

// Decimal binds a column to a decimal.Decimal field with the parse-or-zero
// policy. Use this over Float64 when the column carries money.
func Decimal[T any](set func(rec *T, v decimal.Decimal)) Binding[T] {
	return Binding[T]{
		kind: KindDecimal,
		apply: func(rec *T, text string) error {
			v, _ := parseDecimal(text)
			set(rec, v)
			return nil
		},
	}
}

// Date binds a column to a time.Time field. Cells are parsed against the
// supported date layouts; unparseable cells decode to the zero time.
func Date[T any](set func(rec *T, v time.Time)) Binding[T] {
	return Binding[T]{
		kind: KindDate,
		apply: func(rec *T, text string) error {
			v, _ := parseDate(text)
			set(rec, v)
			return nil
		},
	}
}

// Enum binds a column to a field of any value type V through an ordered
// label-to-value table. A cell whose text is not one of the declared labels
// aborts the entire import with a *ChoiceError. Duplicate labels are not
// deduplicated; the last declaration wins.
func Enum[T any, V any](choices []Choice[V], set func(rec *T, v V)) Binding[T] {
	labels := make([]string, len(choices))
	values := make(map[string]V, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
		values[c.Label] = c.Value
	}
	return Binding[T]{
		kind:    KindEnum,
		choices: labels,
		apply: func(rec *T, text string) error {
			v, ok := values[text]
			if !ok {
				return &ChoiceError{Value: text, Choices: labels}
			}
			set(rec, v)
			return nil
		},
	}
}
