package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestInitWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", &buf)
	defer Init("info")

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message should be written")
	}
}

func TestInitWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("loud", &buf)
	defer Init("info")

	Debug().Msg("debug line")
	Infof("member %d", 7)

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "member 7") {
		t.Errorf("expected formatted info line, got %q", out)
	}
}

func TestGormLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name      string
		traceSQL  bool
		err       error
		expectSQL bool
	}{
		{name: "quiet success", traceSQL: false, err: nil, expectSQL: false},
		{name: "traced success", traceSQL: true, err: nil, expectSQL: true},
		{name: "error always logged", traceSQL: false, err: errors.New("boom"), expectSQL: true},
		{name: "not found is not an error", traceSQL: false, err: gorm.ErrRecordNotFound, expectSQL: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitWithWriter("debug", &buf)
			defer Init("info")

			NewGormLogger(tt.traceSQL).Trace(context.Background(), time.Now(), query, tt.err)

			got := strings.Contains(buf.String(), "SELECT 1")
			if got != tt.expectSQL {
				t.Errorf("logged sql = %v, expected %v (output %q)", got, tt.expectSQL, buf.String())
			}
		})
	}
}

func TestGormLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", &buf)
	defer Init("info")

	l := NewGormLogger(true).LogMode(gormlogger.Silent)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 0 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %s", "error")

	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}
