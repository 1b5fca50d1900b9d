package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestInitLoggerCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	InitLogger(dir, false)
	t.Cleanup(InitNop)

	AppLogger.Info("hello")
	ErrorLogger.Error("boom")
	LogDuration(WithTraceID(context.Background(), "abc"), "TestInitLoggerCreatesFiles")()
	Sync()

	for _, name := range []string{"app.log", "error.log", "timer.log"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("expected %s to have content", name)
		}
	}
}
