package report

import (
	"bytes"
	"testing"

	"elevmaint/types"
)

type stubCar struct {
	snapshot types.Snapshot
}

func (s stubCar) GetStatus() types.Status  { return s.snapshot.Status }
func (s stubCar) GetFloor() int            { return s.snapshot.Floor }
func (s stubCar) GetTotalTrips() int       { return s.snapshot.TotalTrips }
func (s stubCar) GetFaultCount() int       { return s.snapshot.FaultCount }
func (s stubCar) Snapshot() types.Snapshot { return s.snapshot }

func TestText(t *testing.T) {
	s := types.Snapshot{
		Status:     types.StatusMaintenance,
		Floor:      7,
		TotalTrips: 2,
		MaxTrips:   2,
		FaultCount: 0,
		MaxFaults:  1,
	}

	expected := "\n=== ELEVATOR STATUS ===\n" +
		"Status: MAINTENANCE\n" +
		"Current Floor: 7\n" +
		"Total Trips: 2/2\n" +
		"Fault Count: 0/1\n" +
		"========================\n\n"

	if result := Text(s); result != expected {
		t.Errorf("Rendered status not as expected.\nExpected: %q\nWas: %q", expected, result)
	}
}

func TestRenderState(t *testing.T) {
	car := stubCar{types.Snapshot{Status: types.StatusActive, Floor: 1, MaxTrips: 2, MaxFaults: 1}}

	var buf bytes.Buffer
	if err := RenderState(&buf, car); err != nil {
		t.Fatalf("RenderState: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Status: ACTIVE\nCurrent Floor: 1\n")) {
		t.Errorf("Unexpected render: %q", buf.String())
	}
}
