package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    []string
		notWant []string
	}{
		{
			name:    "default is error",
			level:   "",
			want:    []string{" E failed"},
			notWant: []string{"loaded", "diffing"},
		},
		{
			name:    "info",
			level:   "INFO",
			want:    []string{" I diffing", " E failed"},
			notWant: []string{"loaded"},
		},
		{
			name:  "debug",
			level: "debug",
			want:  []string{" D loaded 3 rows", " I diffing", " E failed"},
		},
		{
			name:  "trace",
			level: "trace",
			want:  []string{" T walking", " D loaded 3 rows"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			InitLoggerWriter(buf, tt.level)

			Tracef("walking %s", "rows")
			Debugf("loaded %d rows", 3)
			Infof("diffing")
			Errorf("failed")

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestWithField(t *testing.T) {
	buf := &bytes.Buffer{}
	InitLoggerWriter(buf, "info")

	WithField("path", "a.csv").Info("loaded")
	assert.Contains(t, buf.String(), " I loaded path=a.csv")
}
