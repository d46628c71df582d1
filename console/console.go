// Package console runs the operator command loop on a token stream.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/golang/glog"

	"elevmaint/config"
	"elevmaint/controller"
	"elevmaint/pacer"
	"elevmaint/report"
	"elevmaint/techauth"
	"elevmaint/types"
)

const (
	cmdStatus   = "status"
	cmdMaintain = "maintain"
	cmdStop     = "STOP"
)

type Car interface {
	types.CarState
	MoveTo(dest int) (controller.MoveResult, error)
	PerformMaintenanceStop() controller.MaintenanceResult
	EmergencyShutdown() bool
}

type Loop struct {
	car            Car
	in             techauth.TokenScanner
	out            io.Writer
	pacer          pacer.Pacer
	promptInterval time.Duration
	lowestFloor    int
	highestFloor   int
}

func New(car Car, in techauth.TokenScanner, out io.Writer, p pacer.Pacer, cfg config.Config) *Loop {
	return &Loop{
		car:            car,
		in:             in,
		out:            out,
		pacer:          p,
		promptInterval: cfg.PromptInterval,
		lowestFloor:    cfg.LowestFloor,
		highestFloor:   cfg.HighestFloor,
	}
}

// Run reads commands until an authorized STOP or the end of input and then
// prints the final status report. It reports whether the session ended in an
// emergency shutdown.
func (l *Loop) Run() (bool, error) {
	fmt.Fprint(l.out, "=== ELEVATOR MAINTENANCE SYSTEM ===\n")
	fmt.Fprint(l.out, "Commands: floor number, 'status', 'maintain', 'STOP'\n")

	shutdown := false
	for !shutdown {
		report.RenderState(l.out, l.car)
		l.pacer.Pause(l.promptInterval)
		l.prompt()

		if !l.in.Scan() {
			glog.Info("console input closed")
			break
		}
		shutdown = l.dispatch(l.in.Text())
	}

	fmt.Fprint(l.out, "Final Status Report:\n")
	report.RenderState(l.out, l.car)

	if s, ok := l.in.(interface{ Err() error }); ok && s.Err() != nil {
		return shutdown, fmt.Errorf("read console input: %w", s.Err())
	}
	return shutdown, nil
}

func (l *Loop) prompt() {
	if l.car.GetStatus() == types.StatusMaintenance {
		fmt.Fprint(l.out, "The elevator is under maintenance.\n")
		fmt.Fprint(l.out, "Enter 'maintain' to complete maintenance or 'STOP' to exit: ")
		return
	}
	fmt.Fprint(l.out, "Enter destination floor (or 'status'/'maintain'/'STOP'): ")
}

// dispatch handles one command token and reports whether the loop must end.
func (l *Loop) dispatch(input string) bool {
	glog.V(1).Infof("command %q", input)

	switch input {
	case cmdStop:
		if l.car.EmergencyShutdown() {
			fmt.Fprint(l.out, "System shutdown completed.\n")
			return true
		}
		fmt.Fprint(l.out, "Shutdown cancelled. System continues operation.\n")

	case cmdMaintain:
		if l.car.PerformMaintenanceStop() == controller.MaintenanceDenied {
			fmt.Fprint(l.out, "Maintenance access denied. System continues normal operation.\n")
		}

	case cmdStatus:
		report.RenderState(l.out, l.car)

	default:
		l.move(input)
	}
	return false
}

func (l *Loop) move(input string) {
	dest, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprint(l.out, "Invalid input. Please enter a valid floor number or command.\n")
		return
	}

	if dest < l.lowestFloor || dest > l.highestFloor {
		fmt.Fprintf(l.out, "Invalid floor. Please enter floor %d-%d.\n", l.lowestFloor, l.highestFloor)
		return
	}

	if _, err := l.car.MoveTo(dest); err != nil {
		if errors.Is(err, controller.ErrInvalidFloor) {
			fmt.Fprintf(l.out, "Invalid floor. Please enter floor %d-%d.\n", l.lowestFloor, l.highestFloor)
			return
		}
		glog.Errorf("move to %d: %v", dest, err)
	}
}
