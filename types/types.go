package types

// Status is the operational state of the car. Moving is a phase of
// StatusActive and is never stored.
type Status int

const (
	StatusMaintenance Status = 0
	StatusActive      Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusMaintenance:
		return "MAINTENANCE"
	default:
		return "UNDEFINED"
	}
}

// Snapshot is a point-in-time copy of the car's reportable state.
type Snapshot struct {
	Status     Status
	Floor      int
	TotalTrips int
	MaxTrips   int
	FaultCount int
	MaxFaults  int
}

type CarState interface {
	GetStatus() Status
	GetFloor() int
	GetTotalTrips() int
	GetFaultCount() int
	Snapshot() Snapshot
}
