package controller

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"elevmaint/audit"
	"elevmaint/config"
	"elevmaint/pacer"
	"elevmaint/report"
	"elevmaint/types"
)

const (
	actionMaintenanceStop   = "maintenance stop"
	actionEmergencyShutdown = "emergency shutdown"
)

var ErrInvalidFloor = errors.New("invalid floor")

// NewCar creates an active car at the lowest floor with zeroed counters.
func NewCar(cfg config.Config, out io.Writer, p pacer.Pacer, auth Authorizer, auditLog *audit.Log) (*Car, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if auditLog == nil {
		auditLog = audit.Nop()
	}

	cfg.SpeedSequence = append([]int(nil), cfg.SpeedSequence...)

	return &Car{
		status: types.StatusActive,
		floor:  cfg.LowestFloor,
		cfg:    cfg,
		out:    out,
		pacer:  p,
		auth:   auth,
		audit:  auditLog,
	}, nil
}

// MoveTo travels floor by floor to dest. A speed fault aborts the move where
// it happened and puts the car in maintenance without counting a trip.
// Arriving, including a zero-distance move, always counts one trip.
func (c *Car) MoveTo(dest int) (MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if dest < c.cfg.LowestFloor || dest > c.cfg.HighestFloor {
		return MoveBlocked, fmt.Errorf("%w: %d not in %d-%d", ErrInvalidFloor, dest, c.cfg.LowestFloor, c.cfg.HighestFloor)
	}

	if c.status != types.StatusActive {
		fmt.Fprint(c.out, "ERROR: Elevator is under maintenance. Cannot move.\n")
		glog.Infof("move to %d rejected, car under maintenance", dest)
		return MoveBlocked, nil
	}

	fmt.Fprintf(c.out, "Moving from floor %d to floor %d\n", c.floor, dest)
	glog.Infof("moving from floor %d to floor %d", c.floor, dest)

	for c.floor != dest {
		c.pacer.Pause(c.cfg.StepInterval)

		if c.floor < dest {
			c.floor++
		} else {
			c.floor--
		}
		fmt.Fprintf(c.out, "Moving to floor %d\n", c.floor)

		report.Render(c.out, c.snapshot())

		if c.checkSpeed(c.nextSample()) == speedFault {
			fmt.Fprint(c.out, "\n*** FAULT DETECTED! ***\n")
			fmt.Fprint(c.out, "Elevator movement stopped for safety evaluation.\n")
			fmt.Fprint(c.out, "System entering emergency maintenance mode...\n")
			c.status = types.StatusMaintenance
			glog.Warningf("move to %d aborted at floor %d, entering maintenance", dest, c.floor)
			return MoveFault, nil
		}
	}

	fmt.Fprintf(c.out, "Arrived at floor %d\n", c.floor)
	glog.Infof("arrived at floor %d", c.floor)

	limit := c.recordTrip() == tripLimitReached
	if c.needsMaintenance() || limit {
		c.status = types.StatusMaintenance
		glog.Infof("car entering maintenance after %d trips, %d faults", c.totalTrips, c.faultCount)
	}

	return MoveArrived, nil
}

// PerformMaintenanceStop runs the technician maintenance cycle. It is the only
// operation that clears the trip and fault counters.
func (c *Car) PerformMaintenanceStop() MaintenanceResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.auth.Authorize(actionMaintenanceStop) {
		return MaintenanceDenied
	}

	fmt.Fprint(c.out, "\nTechnician initiated maintenance stop.\n")
	c.status = types.StatusMaintenance
	c.audit.MaintenanceStarted(c.floor)
	glog.Infof("maintenance stop started at floor %d", c.floor)

	fmt.Fprint(c.out, "Elevator is now under maintenance.\n")
	fmt.Fprint(c.out, "Performing maintenance checks...\n")

	for i := c.cfg.CountdownSteps; i > 0; i-- {
		fmt.Fprintf(c.out, "Maintenance in progress... %d seconds remaining\n", i)
		c.pacer.Pause(c.cfg.CountdownInterval)
	}

	c.totalTrips = 0
	c.faultCount = 0

	fmt.Fprint(c.out, "Maintenance completed. Elevator ready for service.\n")
	fmt.Fprint(c.out, "All fault counters reset. System operational.\n")
	c.status = types.StatusActive
	c.audit.MaintenanceCompleted(c.floor)
	glog.Infof("maintenance stop completed, car active at floor %d", c.floor)

	return MaintenanceCompleted
}

// EmergencyShutdown stops the car for good once a technician confirms it.
// Counters are left as they are.
func (c *Car) EmergencyShutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprint(c.out, "\n*** EMERGENCY SHUTDOWN REQUEST ***\n")
	fmt.Fprint(c.out, "This will immediately stop the elevator system.\n")

	if !c.auth.Authorize(actionEmergencyShutdown) {
		return false
	}

	fmt.Fprint(c.out, "\nEmergency shutdown authorized by technician.\n")
	fmt.Fprint(c.out, "System shutting down safely...\n")
	c.status = types.StatusMaintenance
	c.audit.EmergencyShutdown(c.floor)
	glog.Warningf("emergency shutdown at floor %d", c.floor)

	return true
}
