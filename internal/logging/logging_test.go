package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/idelchi/packcrypt/internal/logging"
)

func TestLoggerLevels(t *testing.T) { //nolint:paralleltest // toggles color.NoColor
	color.NoColor = true

	tests := []struct {
		name    string
		logger  logging.Logger
		wantOut []string
		wantErr []string
	}{
		{
			name:    "default",
			wantOut: []string{"plain"},
			wantErr: []string{"[warn] warning", "[error] failure"},
		},
		{
			name:    "verbose",
			logger:  logging.Logger{Verbose: true},
			wantOut: []string{"plain", "[info] information"},
			wantErr: []string{"[warn] warning", "[error] failure"},
		},
		{
			name:    "debug",
			logger:  logging.Logger{Debug: true},
			wantOut: []string{"plain", "[info] information", "[debug] details"},
			wantErr: []string{"[warn] warning", "[error] failure"},
		},
		{
			name:    "quiet",
			logger:  logging.Logger{Quiet: true, Debug: true},
			wantErr: []string{"[error] failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			logger := tt.logger
			logger.Out = &out
			logger.Err = &errOut

			logger.Printf("plain")
			logger.Infof("information")
			logger.Debugf("details")
			logger.Warnf("warning")
			logger.Errorf("failure")

			if got := lines(out.String()); strings.Join(got, "|") != strings.Join(tt.wantOut, "|") {
				t.Errorf("stdout = %q, want %q", got, tt.wantOut)
			}

			if got := lines(errOut.String()); strings.Join(got, "|") != strings.Join(tt.wantErr, "|") {
				t.Errorf("stderr = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
