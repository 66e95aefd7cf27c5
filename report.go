package sheetbind

// report.go holds the import result types handed back to callers. Results
// are built once per import call and never mutated after return.

import "strings"

// summary entry present on every report, exactly once, regardless of how
// many field violations the row carries.
const (
	summaryTag     = "Invalid"
	summaryMessage = "import data invalid"
)

// FieldMessage is one report entry: a column's display name and the
// comma-joined messages of every violation recorded against it.
type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowReport aggregates the validation failures of a single decoded record.
// Index is 1-based over the decoded sequence: blank rows were already
// skipped and do not shift it.
type RowReport struct {
	Index   int               `json:"index"`
	Fields  []FieldMessage    `json:"fields"`
	Summary map[string]string `json:"summary"`
}

// addField appends a violation message under a display name, keeping entry
// order by first appearance and joining repeat messages for the same field
// with a comma.
func (r *RowReport) addField(display, msg string) {
	for i := range r.Fields {
		if r.Fields[i].Field == display {
			r.Fields[i].Message += "," + msg
			return
		}
	}
	r.Fields = append(r.Fields, FieldMessage{Field: display, Message: msg})
}

// ImportResult is the outcome of one import call.
//
// TemplateValid=false means the sheet's header row did not match the schema;
// Records and Reports are empty and the caller should surface "wrong
// template" rather than "data invalid."
type ImportResult[T any] struct {
	TemplateValid bool        `json:"templateValid"`
	Records       []T         `json:"records"`
	Reports       []RowReport `json:"reports"`
}

// buildReport folds one record's violations into a report, resolving each
// programmatic field name to its display name through the descriptors and
// falling back to the raw name when no column matches.
func buildReport(index int, viols []Violation, desc []ColumnDescriptor) RowReport {
	rep := RowReport{
		Index:   index,
		Summary: map[string]string{summaryTag: summaryMessage},
	}
	for _, v := range viols {
		rep.addField(displayFor(v.Field, desc), v.Message)
	}
	return rep
}

func displayFor(field string, desc []ColumnDescriptor) string {
	for _, d := range desc {
		if strings.EqualFold(d.Name, field) {
			return d.Display
		}
	}
	return field
}
