// Package telemetry records gameplay events and windowed statistics for a
// run and writes them as CSV.
package telemetry

import (
	"github.com/google/uuid"

	"github.com/pthm-cable/rivercleanup/session"
)

// EventRecord is one row of events.csv.
type EventRecord struct {
	SessionID string  `csv:"session"`
	Game      int     `csv:"game"`
	AtMs      int64   `csv:"at_ms"`
	Kind      string  `csv:"kind"`
	Category  string  `csv:"category"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Force     float64 `csv:"force"`
	Score     int     `csv:"score"`
	Lives     int     `csv:"lives"`
	Pollution float64 `csv:"pollution"`
}

// NewSessionID returns a fresh identifier stamped on every record of a run.
func NewSessionID() string {
	return uuid.NewString()
}

// NewEventRecord flattens a session event into a CSV row.
func NewEventRecord(sessionID string, game int, e session.Event) EventRecord {
	return EventRecord{
		SessionID: sessionID,
		Game:      game,
		AtMs:      e.AtMs,
		Kind:      e.Kind.String(),
		Category:  e.Category,
		X:         e.X,
		Y:         e.Y,
		Force:     e.Force,
		Score:     e.Score,
		Lives:     e.Lives,
		Pollution: e.Pollution,
	}
}
