package game

import (
	"fmt"

	"github.com/loganfranken/line/core/stage"
)

// Renderer is the drawing surface the core targets. Clear also paints both
// field backgrounds; DrawLine with mirrored set reflects every point through
// the canvas center before stroking.
type Renderer interface {
	Clear()
	DrawNode(n stage.Node, active bool)
	DrawBlock(b stage.Block)
	DrawLine(points []Point, mirrored bool)
	DrawText(text string, x, y float64)
	DrawFullScreenMessage(text string)
}

const (
	scoreTextX = 12
	scoreTextY = 20
)

// Render draws one frame in a fixed order: clear, score text, pending
// message, nodes, blocks, line, mirrored line, then any state overlay. Apart
// from handing off the pending message (shown for exactly one frame) it only
// reads state already finalized by the current tick.
func (g *Game) Render(r Renderer) {
	r.Clear()
	r.DrawText(fmt.Sprintf("SCORE %d  TOTAL %d", g.stageScore, g.totalScore), scoreTextX, scoreTextY)

	if g.hasPendingMsg {
		r.DrawFullScreenMessage(g.pendingMsg)
		g.pendingMsg = ""
		g.hasPendingMsg = false
	}

	for i, n := range g.stage.Nodes {
		r.DrawNode(n, g.active[i])
	}
	for _, b := range g.stage.Blocks {
		r.DrawBlock(b)
	}
	r.DrawLine(g.line, false)
	r.DrawLine(g.line, true)

	if g.Finished() && g.state != StatePaused {
		r.DrawFullScreenMessage(fmt.Sprintf("THE END\ntotal score %d\nC copies your score", g.totalScore))
		return
	}
	switch g.state {
	case StateStarting:
		r.DrawFullScreenMessage("LINE\nclick to start")
	case StateStartingStage:
		secs := g.introTimer/TicksPerSecond + 1
		r.DrawFullScreenMessage(fmt.Sprintf("stage %d in %d", g.stageIdx+1, secs))
	case StatePaused:
		r.DrawFullScreenMessage("PAUSED\nclick to resume\nC copies your score")
	}
}
