package session

import "time"

// Step names a stage of Update, in the order they run.
type Step uint8

const (
	StepRiver Step = iota
	StepCrocodiles
	StepPegador
	StepDrift // trash drift and splash animations
	StepEvents
	StepCollisions
	StepCulling
	StepSpawn
	StepRenderList
	StepCount
)

var stepNames = [...]string{
	StepRiver:      "river",
	StepCrocodiles: "crocodiles",
	StepPegador:    "pegador",
	StepDrift:      "drift",
	StepEvents:     "events",
	StepCollisions: "collisions",
	StepCulling:    "culling",
	StepSpawn:      "spawn",
	StepRenderList: "render_list",
}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return "unknown"
}

// StepTimer receives how long each step of an Update took. Steps that do
// not run on a tick (spawning after game over) are not reported.
type StepTimer interface {
	ObserveStep(step Step, d time.Duration)
}

// SetStepTimer installs the step timer. Pass nil to stop timing.
func (s *Session) SetStepTimer(t StepTimer) {
	s.clock.timer = t
}

// stepClock measures consecutive steps against one running mark.
type stepClock struct {
	timer StepTimer
	mark  time.Time
}

func (c *stepClock) start() {
	if c.timer != nil {
		c.mark = time.Now()
	}
}

// lap charges the time since the previous lap to step.
func (c *stepClock) lap(step Step) {
	if c.timer == nil {
		return
	}
	now := time.Now()
	c.timer.ObserveStep(step, now.Sub(c.mark))
	c.mark = now
}
