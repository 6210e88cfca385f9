package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	closer, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() {
		Log.SetOutput(os.Stderr)
		Log.SetLevel(logrus.WarnLevel)
	})

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", Log.Formatter)
	}

	Log.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_FILE", "-")
	t.Setenv("LOG_LEVEL", "shouting")

	if _, err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Log.SetLevel(logrus.WarnLevel) })

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}
