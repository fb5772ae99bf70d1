package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/rivercleanup/session"
)

// Stage is one timed part of a frame. The first session.StepCount stages
// are the session's own update steps; the rest is the work the game loop
// does around them.
type Stage uint8

const (
	StageInput Stage = Stage(session.StepCount) + iota
	StageAudio
	StageDraw // includes the wait for the next frame in graphical mode
	StageTelemetry
	stageCount
)

// stageOrder is the order stages run in a frame.
var stageOrder = func() []Stage {
	out := []Stage{StageInput}
	for s := session.Step(0); s < session.StepCount; s++ {
		out = append(out, Stage(s))
	}
	return append(out, StageAudio, StageDraw, StageTelemetry)
}()

// Stages returns every stage in frame order.
func Stages() []Stage {
	return stageOrder
}

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageAudio:
		return "audio"
	case StageDraw:
		return "draw"
	case StageTelemetry:
		return "telemetry"
	}
	if s < Stage(session.StepCount) {
		return session.Step(s).String()
	}
	return "unknown"
}

type tickSample struct {
	total  time.Duration
	stages [stageCount]time.Duration
}

// PerfCollector times frames over a rolling window of ticks. It receives
// the session steps as a session.StepTimer and times the game's own stages
// with Lap.
type PerfCollector struct {
	now func() time.Time

	ring   []tickSample
	next   int
	filled int

	cur       tickSample
	tickStart time.Time
	mark      time.Time

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{now: time.Now, ring: make([]tickSample, window)}
}

// BeginTick starts a new sample and sets the lap mark.
func (p *PerfCollector) BeginTick() {
	p.cur = tickSample{}
	p.tickStart = p.now()
	p.mark = p.tickStart
}

// Lap charges the time since the last mark to stage.
func (p *PerfCollector) Lap(stage Stage) {
	now := p.now()
	p.cur.stages[stage] += now.Sub(p.mark)
	p.mark = now
}

// Skip moves the mark without charging anything, for work timed elsewhere.
func (p *PerfCollector) Skip() {
	p.mark = p.now()
}

// ObserveStep records a session step. It implements session.StepTimer.
func (p *PerfCollector) ObserveStep(step session.Step, d time.Duration) {
	if step < session.StepCount {
		p.cur.stages[step] += d
	}
}

// EndTick closes the sample and adds it to the window.
func (p *PerfCollector) EndTick() {
	p.cur.total = p.now().Sub(p.tickStart)
	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.filled < len(p.ring) {
		p.filled++
	}
}

// RecordFrame measures the time between presented frames.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats averages the ticks in the window.
type PerfStats struct {
	Ticks    int
	AvgTick  time.Duration
	MaxTick  time.Duration
	StageAvg [stageCount]time.Duration
	Frame    time.Duration
	FPS      float64
}

// Stats computes the window averages.
func (p *PerfCollector) Stats() PerfStats {
	st := PerfStats{Ticks: p.filled, Frame: p.frame}
	if p.frame > 0 {
		st.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return st
	}

	var total time.Duration
	var sums [stageCount]time.Duration
	for _, s := range p.ring[:p.filled] {
		total += s.total
		st.MaxTick = max(st.MaxTick, s.total)
		for i, d := range s.stages {
			sums[i] += d
		}
	}
	n := time.Duration(p.filled)
	st.AvgTick = total / n
	for i := range sums {
		st.StageAvg[i] = sums[i] / n
	}
	return st
}

// Share returns the stage's percentage of the average tick.
func (s PerfStats) Share(stage Stage) float64 {
	if s.AvgTick <= 0 {
		return 0
	}
	return float64(s.StageAvg[stage]) / float64(s.AvgTick) * 100
}

// SessionTime returns the average time spent inside Session.Update.
func (s PerfStats) SessionTime() time.Duration {
	var d time.Duration
	for _, v := range s.StageAvg[:session.StepCount] {
		d += v
	}
	return d
}

// LogStats logs the window averages in microseconds.
func (s PerfStats) LogStats() {
	attrs := []any{
		"ticks", s.Ticks,
		"avg_tick_us", s.AvgTick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"session_us", s.SessionTime().Microseconds(),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, stage := range stageOrder {
		if us := s.StageAvg[stage].Microseconds(); us > 0 {
			attrs = append(attrs, stage.String()+"_us", us)
		}
	}
	slog.Info("perf", attrs...)
}

// PerfStatsCSV is one perf.csv row, stage averages in microseconds.
type PerfStatsCSV struct {
	WindowEndMs  int64   `csv:"window_end_ms"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	FPS          float64 `csv:"fps"`
	InputUS      int64   `csv:"input_us"`
	RiverUS      int64   `csv:"river_us"`
	CrocodilesUS int64   `csv:"crocodiles_us"`
	PegadorUS    int64   `csv:"pegador_us"`
	DriftUS      int64   `csv:"drift_us"`
	EventsUS     int64   `csv:"events_us"`
	CollisionsUS int64   `csv:"collisions_us"`
	CullingUS    int64   `csv:"culling_us"`
	SpawnUS      int64   `csv:"spawn_us"`
	RenderListUS int64   `csv:"render_list_us"`
	AudioUS      int64   `csv:"audio_us"`
	DrawUS       int64   `csv:"draw_us"`
	TelemetryUS  int64   `csv:"telemetry_us"`
}

// ToCSV flattens the stats for perf.csv.
func (s PerfStats) ToCSV(windowEndMs int64) PerfStatsCSV {
	us := func(stage Stage) int64 { return s.StageAvg[stage].Microseconds() }
	step := func(st session.Step) int64 { return us(Stage(st)) }
	return PerfStatsCSV{
		WindowEndMs:  windowEndMs,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		FPS:          s.FPS,
		InputUS:      us(StageInput),
		RiverUS:      step(session.StepRiver),
		CrocodilesUS: step(session.StepCrocodiles),
		PegadorUS:    step(session.StepPegador),
		DriftUS:      step(session.StepDrift),
		EventsUS:     step(session.StepEvents),
		CollisionsUS: step(session.StepCollisions),
		CullingUS:    step(session.StepCulling),
		SpawnUS:      step(session.StepSpawn),
		RenderListUS: step(session.StepRenderList),
		AudioUS:      us(StageAudio),
		DrawUS:       us(StageDraw),
		TelemetryUS:  us(StageTelemetry),
	}
}
