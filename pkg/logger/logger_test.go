package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_FirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	first := Init(Options{Level: "debug", Output: &buf})
	second := Init(Options{Level: "error", Output: &bytes.Buffer{}})

	if first.GetLevel() != second.GetLevel() {
		t.Fatalf("second Init changed the instance")
	}
	if first.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("level = %v, want debug", first.GetLevel())
	}

	log := Get()
	log.Info().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("log output missing: %q", buf.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Get()
}

func TestWith_TagsComponent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})

	scoped := With("auth")
	scoped.Info().Msg("scoped")
	if !strings.Contains(buf.String(), `"component":"auth"`) {
		t.Fatalf("component tag missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"  WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
