package mint

import "time"

// fpsInterval is how often FrameCounter refreshes its rate.
const fpsInterval = 500 * time.Millisecond

// FrameCounter measures the frame rate, refreshed about every 0.5 seconds.
// The zero value is ready to use.
type FrameCounter struct {
	now    func() time.Time
	start  time.Time
	frames int
	fps    float64
}

// Tick records one presented frame.
func (f *FrameCounter) Tick() {
	now := f.clock()
	if f.start.IsZero() {
		f.start = now
		return
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= fpsInterval {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.start = now
	}
}

// FPS returns the most recent frame rate, or 0 before the first interval
// has elapsed.
func (f *FrameCounter) FPS() float64 {
	return f.fps
}

func (f *FrameCounter) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}
