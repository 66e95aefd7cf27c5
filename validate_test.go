package sheetbind

import (
	"testing"
)

// validatorFunc adapts a function to the RecordValidator interface for
// aggregation tests.
type validatorFunc func(rec any) []Violation

func (f validatorFunc) Validate(rec any) []Violation { return f(rec) }

func TestStructValidatorMessages(t *testing.T) {
	type applicant struct {
		Name string `validate:"required"`
		Age  int    `validate:"gte=18"`
	}

	v := NewStructValidator()

	if got := v.Validate(applicant{Name: "ok", Age: 30}); got != nil {
		t.Fatalf("valid record produced violations: %+v", got)
	}

	viols := v.Validate(applicant{Age: 12})
	if len(viols) != 2 {
		t.Fatalf("got %d violations, want 2: %+v", len(viols), viols)
	}
	if viols[0].Field != "Name" || viols[0].Message != "required" {
		t.Errorf("first violation = %+v", viols[0])
	}
	if viols[1].Field != "Age" || viols[1].Message != "gte=18" {
		t.Errorf("second violation = %+v", viols[1])
	}
}

func TestStructValidatorNonStruct(t *testing.T) {
	v := NewStructValidator()
	if got := v.Validate("not a struct"); got != nil {
		t.Errorf("non-struct record produced violations: %+v", got)
	}
}

func TestBuildReport(t *testing.T) {
	desc := []ColumnDescriptor{
		{Name: "Name", Display: "姓名"},
		{Name: "Age", Display: "年龄"},
	}

	t.Run("two fields", func(t *testing.T) {
		rep := buildReport(3, []Violation{
			{Field: "Name", Message: "required"},
			{Field: "Age", Message: "gte=0"},
		}, desc)

		if rep.Index != 3 {
			t.Errorf("index = %d", rep.Index)
		}
		if len(rep.Summary) != 1 || rep.Summary["Invalid"] != "import data invalid" {
			t.Errorf("summary = %v", rep.Summary)
		}
		if len(rep.Fields) != 2 {
			t.Fatalf("fields = %+v", rep.Fields)
		}
		if rep.Fields[0].Field != "姓名" || rep.Fields[1].Field != "年龄" {
			t.Errorf("display resolution failed: %+v", rep.Fields)
		}
	})

	t.Run("same field joined with comma", func(t *testing.T) {
		rep := buildReport(1, []Violation{
			{Field: "Name", Message: "required"},
			{Field: "Name", Message: "min=2"},
		}, desc)

		if len(rep.Fields) != 1 {
			t.Fatalf("fields = %+v", rep.Fields)
		}
		if rep.Fields[0].Message != "required,min=2" {
			t.Errorf("message = %q, want comma join in emission order", rep.Fields[0].Message)
		}
	})

	t.Run("unknown field keeps raw name", func(t *testing.T) {
		rep := buildReport(1, []Violation{{Field: "Ghost", Message: "required"}}, desc)
		if rep.Fields[0].Field != "Ghost" {
			t.Errorf("field = %q, want raw fallback", rep.Fields[0].Field)
		}
	})
}

func TestImportWithCustomValidator(t *testing.T) {
	// Every record invalid on the same field twice: one report per record,
	// one field entry each, messages joined.
	all := validatorFunc(func(rec any) []Violation {
		return []Violation{
			{Field: "Name", Message: "first"},
			{Field: "Name", Message: "second"},
		}
	})

	r := workbook(t, "People", [][]string{
		{"姓名", "年龄"},
		{"Alice", "30"},
		{"Bob", "31"},
	})

	result, err := Import(r, personSchema, WithValidator(all))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(result.Reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(result.Reports))
	}
	for i, rep := range result.Reports {
		if rep.Index != i+1 {
			t.Errorf("report %d index = %d", i, rep.Index)
		}
		if len(rep.Fields) != 1 || rep.Fields[0].Field != "姓名" || rep.Fields[0].Message != "first,second" {
			t.Errorf("report %d fields = %+v", i, rep.Fields)
		}
	}
}
