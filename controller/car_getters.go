package controller

import "elevmaint/types"

func (c *Car) GetStatus() types.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Car) GetFloor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.floor
}

func (c *Car) GetTotalTrips() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalTrips
}

func (c *Car) GetFaultCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.faultCount
}

func (c *Car) Snapshot() types.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// snapshot must be called with mu held.
func (c *Car) snapshot() types.Snapshot {
	return types.Snapshot{
		Status:     c.status,
		Floor:      c.floor,
		TotalTrips: c.totalTrips,
		MaxTrips:   c.cfg.MaxTrips,
		FaultCount: c.faultCount,
		MaxFaults:  c.cfg.MaxFaults,
	}
}
