package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bft-labs/minidxf/internal/drawing"
	"github.com/bft-labs/minidxf/pkg/log"
)

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	msgs   []string
	fields map[string]any
}

func (l *recordingLogger) record(level, msg string, fields []log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, level+": "+msg)
	if l.fields == nil {
		l.fields = make(map[string]any)
	}
	for _, f := range fields {
		l.fields[f.Key] = f.Value
	}
}

func (l *recordingLogger) Debug(msg string, fields ...log.Field) { l.record("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields ...log.Field)  { l.record("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...log.Field)  { l.record("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...log.Field) { l.record("error", msg, fields) }

func writeDrawing(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const bracket = `
units = "mm"

[[entity]]
type = "line"
x1 = -10.0
y1 = -20.0
x2 = 30.0
y2 = 40.0
`

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, outDir, want string
	}{
		{"parts/bracket.toml", "", filepath.Join("parts", "bracket.dxf")},
		{"parts/bracket.toml", "build", filepath.Join("build", "bracket.dxf")},
		{"bracket", "", "bracket.dxf"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.input, tt.outDir); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.outDir, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawing(t, dir, "bracket.toml", bracket)
	logger := &recordingLogger{}

	res, err := New(logger).Render(input, Options{MoveToOrigin: true})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if res.Output != filepath.Join(dir, "bracket.dxf") {
		t.Errorf("Output = %q", res.Output)
	}
	if res.Entities != 1 || !res.HasBounds {
		t.Errorf("Result = %+v", res)
	}
	if res.Bounds.MinX != 0 || res.Bounds.MinY != 0 || res.Width() != 40 || res.Height() != 60 {
		t.Errorf("Bounds = %+v, want (0,0,40,60)", res.Bounds)
	}

	data, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "LINE") || !strings.HasSuffix(string(data), "EOF\n") {
		t.Errorf("unexpected output:\n%s", data)
	}

	if len(logger.msgs) != 1 || logger.msgs[0] != "info: rendered drawing" {
		t.Errorf("log = %v", logger.msgs)
	}
	if got, ok := logger.fields["move_to_origin"].(bool); !ok || !got {
		t.Errorf("move_to_origin field = %v, want true", logger.fields["move_to_origin"])
	}
}

func TestRenderExplicitOutputAndUnits(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawing(t, dir, "bracket.toml", bracket)
	out := filepath.Join(dir, "custom.dxf")

	res, err := New(nil).Render(input, Options{Output: out, Units: "inch"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if res.Output != out || res.Units != "inch" {
		t.Errorf("Result = %+v", res)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "$INSUNITS\n70\n1\n") {
		t.Errorf("output does not use inch code")
	}
}

func TestRenderInvalidDrawing(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawing(t, dir, "bad.toml", "[[entity]]\ntype = \"circle\"\n")
	logger := &recordingLogger{}

	_, err := New(logger).Render(input, Options{})
	if !errors.Is(err, drawing.ErrUnknownEntity) {
		t.Fatalf("Render() error = %v, want ErrUnknownEntity", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "bad.dxf")); !os.IsNotExist(statErr) {
		t.Error("Render() wrote output for invalid drawing")
	}
	// the caller decides how to report the error
	if len(logger.msgs) != 0 {
		t.Errorf("log = %v, want nothing", logger.msgs)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawing(t, dir, "bracket.toml", bracket)

	res, err := New(nil).Inspect(input, Options{})
	if err != nil {
		t.Fatalf("Inspect() unexpected error: %v", err)
	}
	if res.Bounds.MinX != -10 || res.Bounds.MaxY != 40 {
		t.Errorf("Bounds = %+v", res.Bounds)
	}
	if _, err := os.Stat(filepath.Join(dir, "bracket.dxf")); !os.IsNotExist(err) {
		t.Error("Inspect() wrote a file")
	}
}

func TestInspectEmpty(t *testing.T) {
	dir := t.TempDir()
	input := writeDrawing(t, dir, "empty.toml", "units = \"mm\"\n")

	res, err := New(nil).Inspect(input, Options{})
	if err != nil {
		t.Fatalf("Inspect() unexpected error: %v", err)
	}
	if res.HasBounds || res.Entities != 0 || res.Width() != 0 {
		t.Errorf("Result = %+v, want empty", res)
	}
}
