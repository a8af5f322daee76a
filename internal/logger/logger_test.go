package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" ERR ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"something", zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Fatalf("parseLevel(%q)=%v, want %v", c.in, got, c.want)
		}
	}
}

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(Options{Level: "debug"}, &buf)
	if L().GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", L().GetLevel())
	}

	L().Info().Str("symbol", "NEPSE").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if line["message"] != "hello" || line["symbol"] != "NEPSE" || line["service"] != "stocktrend" {
		t.Fatalf("unexpected log line: %v", line)
	}
}

func TestInit_Pretty(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(Options{Level: "info", Pretty: true}, &buf)
	L().Info().Msg("pretty")
	if buf.Len() == 0 {
		t.Fatalf("expected console output")
	}
	if json.Valid(buf.Bytes()) {
		t.Fatalf("pretty output should not be JSON: %q", buf.String())
	}
}

// Ensure L() never returns nil and initializes level if not set
func TestLoggerAccessor_NotNil(t *testing.T) {
	base = zerolog.Logger{}
	ready = false
	lg := L()
	if lg == nil {
		t.Fatalf("logger is nil")
	}
	if lg.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("logger level not initialized, got %v", lg.GetLevel())
	}
}
