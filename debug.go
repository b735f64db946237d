package mint

// debugLog writes frame stats to the logger at debug level.
func (g *Graphics) debugLog(s FrameStats) {
	Logger().Debug("frame",
		"vertices", s.Vertices,
		"uploads", s.Uploads,
		"draw_calls", s.DrawCalls,
		"clears", s.Clears,
		"dropped", s.Dropped)
}

// SetDebug enables or disables per-frame stats logging.
func (g *Graphics) SetDebug(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.debug = enabled
}
