package sheetbind

// template.go emits a blank workbook a user can fill in and feed back to
// Import: one named sheet, a header row of display names, required columns
// marked by style only (so a generated template always reconciles against
// its own schema), header comments from column descriptions, and drop-list
// constraints on every enum and boolean column.

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	minTemplateColWidth = 12
	requiredHeaderColor = "CC0000"
)

// Template renders the schema as a new workbook. The caller owns the
// returned file and must Close it.
func Template[T any](s Schema[T]) (*excelize.File, error) {
	desc, err := s.descriptors()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), s.Sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheetbind: name template sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("sheetbind: template header style: %w", err)
	}
	requiredStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: requiredHeaderColor}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("sheetbind: template required style: %w", err)
	}

	for i, d := range desc {
		if err := emitColumn(f, s.Sheet, i+1, d, headerStyle, requiredStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// WriteTemplate renders the schema's template workbook to w.
func WriteTemplate[T any](w io.Writer, s Schema[T]) error {
	f, err := Template(s)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func emitColumn(f *excelize.File, sheet string, col int, d ColumnDescriptor, headerStyle, requiredStyle int) error {
	cell, err := excelize.CoordinatesToCellName(col, 1)
	if err != nil {
		return fmt.Errorf("sheetbind: template column %d: %w", col, err)
	}
	colName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Errorf("sheetbind: template column %d: %w", col, err)
	}

	if err := f.SetCellValue(sheet, cell, d.Header()); err != nil {
		return fmt.Errorf("sheetbind: template header %q: %w", d.Header(), err)
	}

	style := headerStyle
	if d.Required {
		style = requiredStyle
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("sheetbind: template header %q: %w", d.Header(), err)
	}

	width := float64(2*len([]rune(d.Header())) + 4)
	if width < minTemplateColWidth {
		width = minTemplateColWidth
	}
	if err := f.SetColWidth(sheet, colName, colName, width); err != nil {
		return fmt.Errorf("sheetbind: template column %q width: %w", colName, err)
	}

	if d.Description != "" {
		comment := excelize.Comment{
			Cell:      cell,
			Author:    d.Author,
			Paragraph: []excelize.RichTextRun{{Text: d.Description}},
		}
		if err := f.AddComment(sheet, comment); err != nil {
			return fmt.Errorf("sheetbind: template comment on %q: %w", d.Header(), err)
		}
	}

	if len(d.Choices) > 0 {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", colName, colName, excelize.TotalRows)
		if err := dv.SetDropList(d.Choices); err != nil {
			return fmt.Errorf("sheetbind: template choices on %q: %w", d.Header(), err)
		}
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return fmt.Errorf("sheetbind: template choices on %q: %w", d.Header(), err)
		}
	}

	return nil
}
