package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerParsesLevel(t *testing.T) {
	logger := NewLogger("debug", "development")
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", logger.GetLevel())
	}
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogger("shouting", "development")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected info level fallback, got %v", logger.GetLevel())
	}
}

func TestNewLoggerFormatterFollowsEnvironment(t *testing.T) {
	if _, ok := NewLogger("info", "production").Formatter.(*logrus.JSONFormatter); !ok {
		t.Error("expected JSON formatter in production")
	}
	if _, ok := NewLogger("info", "development").Formatter.(*logrus.TextFormatter); !ok {
		t.Error("expected text formatter in development")
	}
}

func TestDraftLoggerAttachesComponent(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	dl := NewDraftLogger(base)
	dl.LogPick(1, "Alpha", "RB One", "RB", 99)

	out := buf.String()
	if !strings.Contains(out, `"component":"draft"`) {
		t.Errorf("expected component field, got %s", out)
	}
	if !strings.Contains(out, `"player":"RB One"`) {
		t.Errorf("expected player field, got %s", out)
	}
}
