package report

import (
	"fmt"
	"io"
	"strings"

	"elevmaint/types"
)

const (
	header = "=== ELEVATOR STATUS ==="
	footer = "========================"
)

// Text renders a snapshot as the operator status block.
func Text(s types.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n" + header + "\n")
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "Current Floor: %d\n", s.Floor)
	fmt.Fprintf(&b, "Total Trips: %d/%d\n", s.TotalTrips, s.MaxTrips)
	fmt.Fprintf(&b, "Fault Count: %d/%d\n", s.FaultCount, s.MaxFaults)
	b.WriteString(footer + "\n\n")
	return b.String()
}

func Render(w io.Writer, s types.Snapshot) error {
	_, err := io.WriteString(w, Text(s))
	return err
}

// RenderState renders the current state of any car.
func RenderState(w io.Writer, car types.CarState) error {
	return Render(w, car.Snapshot())
}
