package catalog

import (
	"bytes"
	"testing"

	"github.com/sheetbind/sheetbind"
)

type visitor struct {
	Name string `validate:"required"`
}

var visitorSchema = sheetbind.Schema[visitor]{
	Sheet: "Visitors",
	Columns: []sheetbind.Column[visitor]{
		{Name: "Name", Display: "Visitor Name", Required: true,
			Bind: sheetbind.Text(func(v *visitor, s string) { v.Name = s })},
	},
}

func TestNewDefinition(t *testing.T) {
	def := New("visitors", "Visitor Log", visitorSchema)

	if def.Info.Key != "visitors" || def.Info.Sheet != "Visitors" {
		t.Errorf("Info = %+v", def.Info)
	}
	if len(def.Info.Columns) != 1 || def.Info.Columns[0] != "Visitor Name" {
		t.Errorf("Columns = %v", def.Info.Columns)
	}

	// The type-erased round trip: template out, import back in.
	var buf bytes.Buffer
	if err := def.WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	summary, err := def.Import(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !summary.TemplateValid || summary.Imported != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(New("visitors", "Visitor Log", visitorSchema))

	if Count() != 1 {
		t.Fatalf("Count() = %d, want 1", Count())
	}
	if _, ok := Get("visitors"); !ok {
		t.Error("Get(visitors) not found")
	}
	if _, ok := Get("ghosts"); ok {
		t.Error("Get(ghosts) unexpectedly found")
	}
	if got := All(); len(got) != 1 || got[0].Info.Key != "visitors" {
		t.Errorf("All() = %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(New("visitors", "Visitor Log", visitorSchema))
}
