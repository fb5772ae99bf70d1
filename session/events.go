package session

// EventKind tags a session event.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventCaught
	EventLost
	EventSeized
	EventReleased
	EventUnlocked
	EventWave
	EventGameOver
	EventRestart
)

var eventNames = [...]string{
	EventSpawned:  "spawned",
	EventCaught:   "caught",
	EventLost:     "lost",
	EventSeized:   "seized",
	EventReleased: "released",
	EventUnlocked: "unlocked",
	EventWave:     "wave",
	EventGameOver: "game_over",
	EventRestart:  "restart",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a gameplay notification delivered to the observer as it happens.
type Event struct {
	Kind      EventKind
	AtMs      int64   // clock time
	Category  string  // trash category for spawned, caught and lost
	X, Y      float64 // where it happened
	Force     float64 // dive force percent for caught and seized
	Score     int
	Lives     int
	Pollution float64 // percent
}

// Observer receives session events. Implementations must not call back into
// the session.
type Observer interface {
	Observe(e Event)
}
