package component

// ScoreComponent is the authoritative score pair for a session
type ScoreComponent struct {
	Left  uint32
	Right uint32
}

// Leader reports which side has reached threshold, if any
// Both sides cannot reach it in the same tick since a goal awards one point
func (s ScoreComponent) Leader(threshold uint32) (left bool, reached bool) {
	switch {
	case s.Left >= threshold:
		return true, true
	case s.Right >= threshold:
		return false, true
	default:
		return false, false
	}
}
