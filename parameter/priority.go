package parameter

// System execution priorities (lower runs first)
// Paddles move before the ball reads their positions
const (
	PriorityPaddle = 10
	PriorityBall   = 20
)
