package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the configured tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Never bank more than one extra tick after a stall.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Stopwatch measures frame and tick durations for the HUD and the batch
// runner. FPS is smoothed with an exponential moving average.
type Stopwatch struct {
	start   time.Time
	lastLap time.Duration
	fps     float64
	smooth  float64
	now     func() time.Time
}

// NewStopwatch starts a stopwatch. smoothing is the weight kept from the
// previous FPS estimate, clamped to [0, 1).
func NewStopwatch(smoothing float64) *Stopwatch {
	if smoothing < 0 {
		smoothing = 0
	}
	if smoothing >= 1 {
		smoothing = 0.9
	}
	s := &Stopwatch{smooth: smoothing, now: time.Now}
	s.start = s.now()
	return s
}

// Lap returns the time since the previous lap and restarts the stopwatch.
func (s *Stopwatch) Lap() time.Duration {
	now := s.now()
	d := now.Sub(s.start)
	s.start = now
	s.lastLap = d
	if d > 0 {
		inst := float64(time.Second) / float64(d)
		if s.fps == 0 {
			s.fps = inst
		} else {
			s.fps = s.fps*s.smooth + inst*(1-s.smooth)
		}
	}
	return d
}

// Elapsed returns the time since the previous lap without restarting.
func (s *Stopwatch) Elapsed() time.Duration { return s.now().Sub(s.start) }

// LastLap returns the duration recorded by the most recent Lap call.
func (s *Stopwatch) LastLap() time.Duration { return s.lastLap }

// FPS returns the smoothed laps-per-second estimate.
func (s *Stopwatch) FPS() float64 { return s.fps }
