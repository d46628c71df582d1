package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		event := map[string]any{}
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("Invalid JSON line %q: %v", scanner.Text(), err)
		}
		events = append(events, event)
	}
	return events
}

func TestEvents(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.AuthDenied("maintenance stop")
	log.SpeedFault(3, 1501, 1)
	log.MaintenanceCompleted(3)

	events := decodeLines(t, &buf)
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	if events[0]["event"] != "auth_denied" || events[0]["action"] != "maintenance stop" || events[0]["level"] != "warn" {
		t.Errorf("Unexpected auth event: %+v", events[0])
	}
	if events[1]["event"] != "speed_fault" || events[1]["speed"] != float64(1501) || events[1]["floor"] != float64(3) {
		t.Errorf("Unexpected fault event: %+v", events[1])
	}
	if _, ok := events[2]["time"]; !ok {
		t.Errorf("Expected timestamp on event: %+v", events[2])
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	// must not panic
	log.AuthGranted("emergency shutdown")
	log.EmergencyShutdown(1)
}
