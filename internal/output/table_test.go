package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_RendersHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"id", "title", "author"})
	table.AddRow([]string{"1", "Rayuela", "Cortázar"})
	table.AddRow([]string{"2", "Ficciones", "Borges"})
	table.Render()

	out := buf.String()
	if !strings.Contains(out, "TITLE") {
		t.Errorf("expected auto-formatted header, got:\n%s", out)
	}
	for _, want := range []string{"Rayuela", "Ficciones", "Borges"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected row value %q in output:\n%s", want, out)
		}
	}
}

func TestTable_EmptyRendersHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWithWriter(&buf, []string{"id", "title"})
	table.Render()

	if !strings.Contains(buf.String(), "ID") {
		t.Errorf("expected header in output, got:\n%s", buf.String())
	}
}
