// File: format_test.go
// Title: Format Tests
// Description: Tests for the JSON, text and console formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive format tests
// - 2025-08-04 v0.2.0: Sorted text fields, coded error details

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/consoleargs/foundation/core/error"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"  console  ", FormatConsole, false},
		{"logfmt", FormatText, true},
		{"", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	entry := NewEntry(LevelDebug, "command resolved")
	entry.Logger = "router"
	entry.RequestID = "req-1"
	entry.WithField("command", "build")
	entry.Error = mdwerror.New("boom").WithCode(mdwerror.CodeUnknownCommand)

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("Format() should terminate the line")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Format() produced invalid JSON: %v", err)
	}

	checks := map[string]interface{}{
		"level":      "debug",
		"message":    "command resolved",
		"logger":     "router",
		"request_id": "req-1",
		"command":    "build",
		"error":      "boom",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("Format() %s = %v, want %v", k, decoded[k], want)
		}
	}

	details, ok := decoded["error_details"].(map[string]interface{})
	if !ok {
		t.Fatal("Format() should embed coded error details")
	}
	if details["code"] != string(mdwerror.CodeUnknownCommand) {
		t.Errorf("error_details.code = %v, want %v", details["code"], mdwerror.CodeUnknownCommand)
	}
}

func TestJSONFormatter_ErrorField(t *testing.T) {
	entry := NewEntry(LevelWarn, "x").WithField("cause", errors.New("disk full"))

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(data), `"cause":"disk full"`) {
		t.Errorf("Format() = %s, want error field rendered as its message", data)
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "executed")
	entry.Logger = "command"
	entry.Fields = Fields{"z": 1, "a": "x"}

	data, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[INF] {command} executed [a=x z=1]\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true

	data, err := f.Format(NewEntry(LevelError, "failed"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(data), "ERR") || !strings.Contains(string(data), "failed") {
		t.Errorf("Format() = %q, want level badge and message", data)
	}
}
