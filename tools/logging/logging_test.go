// License: GPLv3 Copyright: 2026, The lsicons Authors

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	if err := Init(Config{Level: "info", Format: "json", OutputPath: path}); err != nil {
		t.Fatal(err)
	}
	L().Debug("hidden")
	L().Info("listed", zap.String("path", "/tmp"))
	SetLevel(zapcore.DebugLevel)
	L().Debug("now visible", zap.Int("entries", 3))
	_ = Sync()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if strings.Contains(out, "hidden") {
		t.Fatalf("Message below the log level was written: %s", out)
	}
	for _, q := range []string{`"msg":"listed"`, `"path":"/tmp"`, `"msg":"now visible"`, `"entries":3`} {
		if !strings.Contains(out, q) {
			t.Fatalf("%s not found in log output: %s", q, out)
		}
	}
	if err := Init(Config{Level: "loud"}); err == nil {
		t.Fatal("Invalid log level accepted")
	}
}
