package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"Defaults", "", "", logrus.InfoLevel, false},
		{"Debug text", "debug", "text", logrus.DebugLevel, false},
		{"Warn json", "warn", "JSON", logrus.WarnLevel, true},
		{"Garbage level", "loud", "json", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Configure(tt.level, tt.format, &buf)

			if Log.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.wantLevel)
			}

			Log.WithField("component", "test").Warn("hello")
			var decoded map[string]interface{}
			isJSON := json.Unmarshal(buf.Bytes(), &decoded) == nil
			if isJSON != tt.wantJSON {
				t.Errorf("json output = %v, want %v (%q)", isJSON, tt.wantJSON, buf.String())
			}
		})
	}
}
