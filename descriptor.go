package sheetbind

import "fmt"

// hard ceiling on data rows per import, matching the template's target of
// legacy-format consumers; Schema.MaxRows is clamped to this.
const maxRowCeiling = 65000

// ColumnDescriptor is the resolved, immutable definition of one column:
// what the schema declares, minus the typed setter. Descriptors are rebuilt
// on every operation and drive header comparison, cell lookup, template
// layout, and display-name resolution in reports.
type ColumnDescriptor struct {
	Name        string
	Display     string
	Description string
	Author      string
	Required    bool
	Kind        ColumnKind
	Choices     []string // ordered labels; enum and bool columns only
}

// Header returns the text expected in the column's header cell: the display
// name, falling back to the raw field name if no display name is set.
func (d ColumnDescriptor) Header() string {
	if d.Display != "" {
		return d.Display
	}
	return d.Name
}

// descriptors resolves the schema into its ordered column descriptors,
// validating the declaration as it goes. Column order equals declaration
// order; every downstream component depends on that.
func (s Schema[T]) descriptors() ([]ColumnDescriptor, error) {
	if s.Sheet == "" {
		return nil, &SchemaError{Type: typeName[T](), Reason: "missing import metadata: empty sheet name"}
	}
	if len(s.Columns) == 0 {
		return nil, &SchemaError{Type: typeName[T](), Reason: "missing import metadata: no columns declared"}
	}

	out := make([]ColumnDescriptor, 0, len(s.Columns))
	for _, col := range s.Columns {
		if col.Display == "" {
			return nil, &SchemaError{
				Type:   typeName[T](),
				Field:  col.Name,
				Reason: "missing header metadata: empty display name",
			}
		}
		if col.Bind.apply == nil {
			return nil, &SchemaError{
				Type:   typeName[T](),
				Field:  col.Name,
				Reason: "missing header metadata: no cell binding",
			}
		}
		out = append(out, ColumnDescriptor{
			Name:        col.Name,
			Display:     col.Display,
			Description: col.Description,
			Author:      col.Author,
			Required:    col.Required,
			Kind:        col.Bind.kind,
			Choices:     col.Bind.choices,
		})
	}
	return out, nil
}

// rowLimit returns MaxRows defaulted and clamped to the ceiling.
func (s Schema[T]) rowLimit() int {
	if s.MaxRows <= 0 || s.MaxRows > maxRowCeiling {
		return maxRowCeiling
	}
	return s.MaxRows
}

// columnPositions maps field names to their 1-based column positions.
// The decoder locates cells through this map rather than by iteration
// order, so column declarations and descriptor order stay decoupled.
func columnPositions(desc []ColumnDescriptor) map[string]int {
	pos := make(map[string]int, len(desc))
	for i, d := range desc {
		pos[d.Name] = i + 1
	}
	return pos
}

// typeName names T in error messages.
func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
