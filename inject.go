package mint

// Inject queues a synthetic event. Injected events are consumed one per
// Step, after that frame's real events, so a press stays observable for at
// least one frame before its release.
func (s *InputState) Inject(ev Event) {
	s.injectQueue = append(s.injectQueue, ev)
}

// InjectKeyTap queues a press followed by a release of k. Consumes two
// frames.
func (s *InputState) InjectKeyTap(k Key) {
	s.Inject(KeyEvent(k, true))
	s.Inject(KeyEvent(k, false))
}

// InjectClick queues a cursor move to p, then a press and a release of b.
// Consumes three frames.
func (s *InputState) InjectClick(p Point, b Button) {
	s.Inject(CursorEvent(p))
	s.Inject(ButtonEvent(b, true))
	s.Inject(ButtonEvent(b, false))
}

// InjectDrag queues a drag of b from one point to another: a move to from,
// a press, frames-2 linearly interpolated moves, a move to to, and a release.
// frames is clamped to at least 2, and frames+2 events are queued.
func (s *InputState) InjectDrag(from, to Point, b Button, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.Inject(CursorEvent(from))
	s.Inject(ButtonEvent(b, true))
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.Inject(CursorEvent(Point{
			X: from.X + (to.X-from.X)*t,
			Y: from.Y + (to.Y-from.Y)*t,
		}))
	}
	s.Inject(CursorEvent(to))
	s.Inject(ButtonEvent(b, false))
}

// PendingInjected returns the number of queued synthetic events.
func (s *InputState) PendingInjected() int {
	return len(s.injectQueue)
}

// applyInjected pops one event from the inject queue and folds it.
func (s *InputState) applyInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.Apply(ev)
	return true
}
