package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color codes so output assertions see plain text.
	color.NoColor = true
}

// captureStdout redirects stdout for the duration of fn and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	oldColor := color.Output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	color.Output = w
	defer func() {
		os.Stdout = old
		color.Output = oldColor
	}()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

func TestGlyphMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"success", func() { Success("site %s created", "blog") }, "✓ site blog created\n"},
		{"error", func() { Error("site %s not found", "blog") }, "✗ site blog not found\n"},
		{"warn", func() { Warn("hosts entry skipped") }, "! hosts entry skipped\n"},
		{"info", func() { Info("starting containers") }, "→ starting containers\n"},
		{"plain", func() { Print("wordpress: %d", 8000) }, "wordpress: 8000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureStdout(t, tt.fn)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	out := captureStdout(t, func() {
		if err := JSON(map[string]interface{}{"site": "blog", "enabled": true}); err != nil {
			t.Errorf("JSON failed: %v", err)
		}
	})

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if decoded["site"] != "blog" {
		t.Errorf("expected site blog, got %v", decoded["site"])
	}
	if !strings.Contains(out, "\n  ") {
		t.Error("expected indented output")
	}
}

func TestTable(t *testing.T) {
	out := captureStdout(t, func() {
		Table(
			[]string{"NAME", "WORDPRESS"},
			[][]string{
				{"blog", "8000"},
				{"shop", "8010"},
			},
		)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("unexpected separator line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "blog") || !strings.Contains(lines[2], "8000") {
		t.Errorf("row missing data: %q", lines[2])
	}

	// Columns align on the widest cell
	if strings.Index(lines[2], "8000") != strings.Index(lines[3], "8010") {
		t.Error("columns not aligned")
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	out := captureStdout(t, func() {
		Table(nil, [][]string{{"orphan"}})
	})
	if out != "" {
		t.Errorf("expected no output for empty headers, got %q", out)
	}
}
