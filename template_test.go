package sheetbind

import (
	"bytes"
	"strings"
	"testing"
)

func TestTemplateHeader(t *testing.T) {
	f, err := Template(personSchema)
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	defer f.Close()

	if f.GetSheetName(0) != "People" {
		t.Errorf("sheet name = %q, want People", f.GetSheetName(0))
	}
	a1, err := f.GetCellValue("People", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	b1, err := f.GetCellValue("People", "B1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if a1 != "姓名" || b1 != "年龄" {
		t.Errorf("header = [%q %q]", a1, b1)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	// A generated template must reconcile against its own schema: the
	// required marker is style only, never header text.
	var buf bytes.Buffer
	if err := WriteTemplate(&buf, personSchema); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}

	result, err := Import(bytes.NewReader(buf.Bytes()), personSchema)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !result.TemplateValid {
		t.Fatal("template did not reconcile against its own schema")
	}
	if len(result.Records) != 0 || len(result.Reports) != 0 {
		t.Errorf("empty template produced records=%d reports=%d", len(result.Records), len(result.Reports))
	}
}

func TestTemplateChoiceConstraints(t *testing.T) {
	f, err := Template(memberSchema)
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	defer f.Close()

	dvs, err := f.GetDataValidations("Members")
	if err != nil {
		t.Fatalf("GetDataValidations: %v", err)
	}
	if len(dvs) != 2 {
		t.Fatalf("got %d data validations, want 2 (enum and bool columns)", len(dvs))
	}

	// Column B is the Role enum, column C the Active bool; both span the
	// full data range below the header.
	wantSqref := map[string]string{
		"B2:B1048576": "Admin", // first enum label in the drop list
		"C2:C1048576": "Yes",   // yes label first for bool columns
	}
	for _, dv := range dvs {
		wantLabel, ok := wantSqref[dv.Sqref]
		if !ok {
			t.Errorf("unexpected Sqref %q", dv.Sqref)
			continue
		}
		if dv.Formula1 == "" || !strings.Contains(dv.Formula1, wantLabel) {
			t.Errorf("validation %q Formula1 = %q, want it to contain %q", dv.Sqref, dv.Formula1, wantLabel)
		}
	}
}

func TestTemplateRejectsBadSchema(t *testing.T) {
	bad := Schema[person]{Sheet: "People"}
	if _, err := Template(bad); err == nil {
		t.Fatal("Template accepted a schema with no columns")
	}
}
