package controller

import (
	"fmt"

	"github.com/golang/glog"
)

// The helpers below expect mu to be held by the caller.

// checkSpeed compares one sample against the threshold. Only a sample
// strictly above the threshold is a fault.
func (c *Car) checkSpeed(sample int) speedResult {
	if sample > c.cfg.MaxSpeedThreshold {
		c.faultCount++
		fmt.Fprintf(c.out, "WARNING: Speed anomaly detected - %d units\n", sample)
		glog.Warningf("speed anomaly at floor %d: %d > %d", c.floor, sample, c.cfg.MaxSpeedThreshold)
		c.audit.SpeedFault(c.floor, sample, c.faultCount)
		return speedFault
	}

	fmt.Fprintf(c.out, "Speed normal: %d units\n", sample)
	glog.V(1).Infof("speed sample %d at floor %d", sample, c.floor)
	return speedNormal
}

// nextSample reads the speed feed at the rolling cursor. The cursor is never
// reset, so consecutive moves continue where the last one stopped.
func (c *Car) nextSample() int {
	sample := c.cfg.SpeedSequence[c.cursor]
	c.cursor = (c.cursor + 1) % len(c.cfg.SpeedSequence)
	return sample
}

func (c *Car) recordTrip() tripResult {
	c.totalTrips++
	fmt.Fprintf(c.out, "Trip completed. Total trips: %d\n", c.totalTrips)

	if c.totalTrips >= c.cfg.MaxTrips {
		fmt.Fprintf(c.out, "MAINTENANCE REQUIRED: Trip limit reached (%d/%d)\n", c.totalTrips, c.cfg.MaxTrips)
		return tripLimitReached
	}
	return tripContinue
}

func (c *Car) needsMaintenance() bool {
	if c.faultCount >= c.cfg.MaxFaults {
		fmt.Fprintf(c.out, "MAINTENANCE REQUIRED: Too many faults (%d/%d)\n", c.faultCount, c.cfg.MaxFaults)
		c.audit.MaintenanceRequired("fault limit", c.totalTrips, c.faultCount)
		return true
	}

	if c.totalTrips >= c.cfg.MaxTrips {
		fmt.Fprint(c.out, "MAINTENANCE REQUIRED: Trip limit reached\n")
		c.audit.MaintenanceRequired("trip limit", c.totalTrips, c.faultCount)
		return true
	}

	return false
}
