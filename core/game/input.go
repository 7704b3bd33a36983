package game

// Point is one pointer sample in canvas coordinates.
type Point struct {
	X, Y float64
}

// Input buffers events produced asynchronously by the input adapter between
// ticks. The core consumes it exactly once per tick: one-shot flags and the
// sample queue are cleared after consumption, held-state flags are level
// triggered and left to the producer.
type Input struct {
	Clicked      bool
	PauseClicked bool
	PointerHeld  bool
	ReplyHeld    bool
	Moves        []Point
}

// AddMove appends a pointer-move sample for the next tick.
func (in *Input) AddMove(x, y float64) {
	in.Moves = append(in.Moves, Point{X: x, Y: y})
}

// Reset clears the one-shot flags and the sample queue.
func (in *Input) Reset() {
	in.Clicked = false
	in.PauseClicked = false
	in.Moves = in.Moves[:0]
}
