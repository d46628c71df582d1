package controller

import (
	"io"
	"sync"

	"elevmaint/audit"
	"elevmaint/config"
	"elevmaint/pacer"
	"elevmaint/types"
)

type speedResult int

const (
	speedNormal speedResult = 0
	speedFault  speedResult = 1
)

type tripResult int

const (
	tripContinue     tripResult = 0
	tripLimitReached tripResult = 1
)

// MoveResult is the outcome of a MoveTo call.
type MoveResult int

const (
	MoveArrived MoveResult = 0
	MoveFault   MoveResult = 1
	MoveBlocked MoveResult = 2
)

func (r MoveResult) String() string {
	switch r {
	case MoveArrived:
		return "ARRIVED"
	case MoveFault:
		return "FAULT"
	case MoveBlocked:
		return "BLOCKED"
	default:
		return "UNDEFINED"
	}
}

type MaintenanceResult int

const (
	MaintenanceDenied    MaintenanceResult = 0
	MaintenanceCompleted MaintenanceResult = 1
)

func (r MaintenanceResult) String() string {
	switch r {
	case MaintenanceDenied:
		return "DENIED"
	case MaintenanceCompleted:
		return "COMPLETED"
	default:
		return "UNDEFINED"
	}
}

// Authorizer gates technician actions.
type Authorizer interface {
	Authorize(action string) bool
}

// Car is the single simulated elevator car. All exported methods hold mu
// for their full duration.
type Car struct {
	mu sync.Mutex

	status     types.Status
	floor      int
	faultCount int
	totalTrips int
	cursor     int

	cfg   config.Config
	out   io.Writer
	pacer pacer.Pacer
	auth  Authorizer
	audit *audit.Log
}
