package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "test-service")

	log.WithComponent("codec").Info("encoded", Fields("tokens", 4))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["service"] != "test-service" {
		t.Errorf("service = %v, want test-service", entry["service"])
	}
	if entry[FieldComponent] != "codec" {
		t.Errorf("component = %v, want codec", entry[FieldComponent])
	}
	if entry["tokens"] != float64(4) {
		t.Errorf("tokens = %v, want 4", entry["tokens"])
	}
	if entry["message"] != "encoded" {
		t.Errorf("message = %v, want encoded", entry["message"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "")

	log.WithError(errTest{}).Error("decode failed")

	if !strings.Contains(buf.String(), "bad token") {
		t.Errorf("expected error field in output, got %s", buf.String())
	}
}

type errTest struct{}

func (errTest) Error() string { return "bad token" }

func TestFields_OddPairs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("Fields with dangling key = %v, want {a: 1}", m)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Level: "info", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}
