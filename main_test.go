package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevmaint/audit"
	"elevmaint/config"
	"elevmaint/pacer"
)

func TestSession_AuditTrail(t *testing.T) {
	var out, auditBuf bytes.Buffer
	cfg := config.Default()
	cfg.SpeedSequence = []int{1400, 1600}

	in := strings.NewReader("4 maintain 847392 STOP 847392")
	if err := session(cfg, in, &out, pacer.Instant{}, audit.New(&auditBuf)); err != nil {
		t.Fatalf("session: %v", err)
	}

	events := []string{"speed_fault", "auth_granted", "maintenance_started", "maintenance_completed", "emergency_shutdown"}
	trail := auditBuf.String()
	last := -1
	for _, event := range events {
		idx := strings.Index(trail, `"event":"`+event+`"`)
		if idx < 0 || idx < last {
			t.Errorf("Expected %s in order in audit trail:\n%s", event, trail)
		}
		last = idx
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car.yaml")
	if err := os.WriteFile(path, []byte("max_trips: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(path, "", "", true); err == nil {
		t.Errorf("Expected validation error for max_trips 0")
	}
}
