package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerboseControlsDebug(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    bool
	}{
		{"quiet hides debug", false, false},
		{"verbose shows debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(&buf, tt.verbose)
			t.Cleanup(func() { Init(&bytes.Buffer{}, false) })

			Debug("created", "path", "textures/brick.texture")

			got := strings.Contains(buf.String(), "brick.texture")
			if got != tt.want {
				t.Errorf("debug output present = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNonTerminalUsesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Error("write failed", "path", "a.material")

	out := buf.String()
	for _, want := range []string{"level=error", "path=a.material", "forge"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
