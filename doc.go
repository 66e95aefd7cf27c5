// Package sheetbind binds tabular spreadsheet data to strongly-typed records.
//
// A caller declares a Schema for a record type once, as a package-level
// literal: the target sheet name, a row ceiling, and an ordered list of
// columns, each carrying a display name and a typed cell binding. From that
// declaration the package can generate a template workbook whose header row
// and choice constraints match the schema, and import a workbook back into a
// slice of typed records with per-row validation reports.
//
// The import path is strict about structure and lenient about data: a header
// row that does not match the schema exactly yields TemplateValid=false with
// no records, while malformed numeric or date cells decode to the field's
// zero value and are left for the record validator to flag. The one
// exception is enumeration cells, where an unknown label aborts the whole
// import.
//
// Spreadsheet mechanics are delegated to excelize; record constraint
// checking is delegated to a RecordValidator, by default a
// go-playground/validator adapter reading `validate` struct tags.
package sheetbind
