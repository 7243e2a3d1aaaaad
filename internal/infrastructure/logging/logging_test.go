package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetup_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Setup("production", "debug", &buf)
	t.Cleanup(func() { Setup("local", "info", os.Stderr) })

	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v", l.GetLevel())
	}
	l.WithField("code", "ABCDEFGH23").Info("voucher issued")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not JSON: %q (%v)", buf.String(), err)
	}
	if line["msg"] != "voucher issued" || line["code"] != "ABCDEFGH23" {
		t.Fatalf("unexpected entry: %v", line)
	}
}

func TestSetup_UnknownLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	l := Setup("local", "loud", &buf)
	t.Cleanup(func() { Setup("local", "info", os.Stderr) })

	if l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %v, want info", l.GetLevel())
	}
}
