package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("zero should fall back, got %d", got)
	}
	if got := normalizePositiveInt(-3, 7); got != 7 {
		t.Fatalf("negative should fall back, got %d", got)
	}
	if got := normalizePositiveInt(14, 7); got != 14 {
		t.Fatalf("positive should pass through, got %d", got)
	}
}

func TestResolveLogFilePathUsesWorkdirDefault(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	path, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	if filepath.Base(path) != defaultLogFilename {
		t.Fatalf("filename want %s got %s", defaultLogFilename, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != defaultLogDirName {
		t.Fatalf("dir want %s got %s", defaultLogDirName, filepath.Dir(path))
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("log dir should exist after resolve: %v", err)
	}
}

func TestReleaseModeWritesJSONFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "api.log"})
	log.Info("order_created", zap.String("order_no", "SL20260829ABCD"))
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "api.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "order_created") {
		t.Fatalf("log file missing message, got %s", text)
	}
	if !strings.Contains(text, "SL20260829ABCD") {
		t.Fatalf("log file missing field, got %s", text)
	}
}

func TestDebugModeStaysOnStdout(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "api.log"})
	log.Debug("debug-only")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "api.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create a log file")
	}
}
