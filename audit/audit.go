// Package audit records technician and safety events as JSON lines.
package audit

import (
	"io"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

type Log struct {
	logger zerolog.Logger
}

func New(w io.Writer) *Log {
	zerolog.TimeFieldFormat = timeFormat
	return &Log{logger: zerolog.New(w).With().Timestamp().Logger()}
}

// Nop discards every event.
func Nop() *Log {
	return &Log{logger: zerolog.Nop()}
}

func (l *Log) AuthGranted(action string) {
	l.logger.Info().Str("event", "auth_granted").Str("action", action).Send()
}

func (l *Log) AuthDenied(action string) {
	l.logger.Warn().Str("event", "auth_denied").Str("action", action).Msg("unauthorized access attempt")
}

func (l *Log) SpeedFault(floor, sample, faults int) {
	l.logger.Error().
		Str("event", "speed_fault").
		Int("floor", floor).
		Int("speed", sample).
		Int("fault_count", faults).
		Send()
}

func (l *Log) MaintenanceRequired(reason string, trips, faults int) {
	l.logger.Warn().
		Str("event", "maintenance_required").
		Str("reason", reason).
		Int("total_trips", trips).
		Int("fault_count", faults).
		Send()
}

func (l *Log) MaintenanceStarted(floor int) {
	l.logger.Info().Str("event", "maintenance_started").Int("floor", floor).Send()
}

func (l *Log) MaintenanceCompleted(floor int) {
	l.logger.Info().Str("event", "maintenance_completed").Int("floor", floor).Send()
}

func (l *Log) EmergencyShutdown(floor int) {
	l.logger.Warn().Str("event", "emergency_shutdown").Int("floor", floor).Send()
}
