package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"", Info},
		{"WARN", Warn},
		{"warning", Warn},
		{"error", Error},
		{"verbose", Info},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("JSON"); got != FormatJSON {
		t.Fatalf("ParseFormat(JSON) = %v", got)
	}
	if got := ParseFormat(""); got != FormatText {
		t.Fatalf("ParseFormat('') = %v", got)
	}
}

// newCaptured arma un logger igual que New pero escribiendo a un buffer.
func newCaptured(opts Options) (*StdLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(opts).(*StdLogger)
	l.std = log.New(&buf, "", 0)
	return l, &buf
}

func TestNewRespetaNivelYApp(t *testing.T) {
	l, buf := newCaptured(Options{
		Level:  ParseLevel("warn"),
		Format: ParseFormat("text"),
		App:    "pet-haven",
	})

	l.Info("no debería salir", nil)
	if buf.Len() != 0 {
		t.Fatalf("info below warn level leaked: %q", buf.String())
	}

	l.Warn("cuidado", map[string]any{"pet_id": 3})
	out := buf.String()
	if !strings.Contains(out, "app=pet-haven") {
		t.Fatalf("missing app field: %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "pet_id=3") {
		t.Fatalf("unexpected entry: %q", out)
	}
}

func TestFormatJSONEmiteJSON(t *testing.T) {
	l, buf := newCaptured(Options{Level: Info, Format: FormatJSON})

	l.Info("hola", nil)
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"hola"`) {
		t.Fatalf("expected json entry, got %q", out)
	}
}
