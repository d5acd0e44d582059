package render

import (
	"strings"
	"testing"
)

func TestTableAlignment(t *testing.T) {
	table := NewTable("-Name", "Count")
	if err := table.AddRow("a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := table.AddRow("longer", "12345678"); err != nil {
		t.Fatal(err)
	}

	got := table.Render()
	want := strings.Join([]string{
		"Name       Count",
		"----------------",
		"a              1",
		"longer  12345678",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableColumnBoundaries(t *testing.T) {
	table := NewTable("-Name", "Speed", "-Hosts")
	rows := [][]string{
		{"eth0", "1G", "web1 web2"},
		{"ethernet25", "100M", ""},
	}
	for _, r := range rows {
		if err := table.AddRow(r...); err != nil {
			t.Fatal(err)
		}
	}

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	header := lines[0]
	for _, line := range lines[2:] {
		if len(line) != len(header) {
			t.Errorf("row length %d differs from header length %d: %q", len(line), len(header), line)
		}
	}
	if len(lines[1]) != len(header) {
		t.Errorf("separator length %d differs from header length %d", len(lines[1]), len(header))
	}
	if strings.Trim(lines[1], "-") != "" {
		t.Errorf("separator is not all dashes: %q", lines[1])
	}
}

func TestTableRenderIdempotent(t *testing.T) {
	table := NewTable("ID", "-Name")
	table.AddRow("1", "default")
	first := table.Render()
	second := table.Render()
	if first != second {
		t.Errorf("re-render differs:\n%q\n%q", first, second)
	}
}

func TestTableEmptyRows(t *testing.T) {
	table := NewTable("ID", "-Name")
	got := table.Render()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("empty table: got %d lines, want header and separator only", len(lines))
	}
}

func TestTableColumnCountMismatch(t *testing.T) {
	table := NewTable("ID", "-Name")
	if err := table.AddRow("1"); err == nil {
		t.Error("short row: want error")
	}
	if err := table.AddRow("1", "a", "b"); err == nil {
		t.Error("long row: want error")
	}
}
