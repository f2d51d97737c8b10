package lesson

import (
	"bytes"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{
		"gas-properties",
		"hydrostatics",
		"pipe-flow",
		"standard-atmosphere",
		"units",
		"vortex-streamfunction",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d lessons, got %d: %v", len(want), len(names), names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("lesson %d: expected %s, got %s", i, n, names[i])
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("boundary-layers"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestRunAllLessons(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			l, err := Get(name)
			if err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			if err := NewRunner(&buf).Run(l); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("expected output")
			}
			if !strings.Contains(buf.String(), l.Title) {
				t.Error("output should contain the lesson title")
			}
		})
	}
}

func TestPipeFlowLessonValues(t *testing.T) {
	l, err := Get("pipe-flow")
	if err != nil {
		t.Fatal(err)
	}

	out, err := l.Cells[0].Compute()
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Text) != 3 {
		t.Fatalf("expected 3 result lines, got %d", len(out.Text))
	}
	// Colebrook at eps/D = 0.002, Re = 1e5 lands near f = 0.0251.
	if !strings.Contains(out.Text[0], "0.025") {
		t.Errorf("unexpected Colebrook line: %s", out.Text[0])
	}
}
