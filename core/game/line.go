package game

// advanceLine feeds buffered pointer samples through the collision and
// win-condition checks. The order per sample is fixed: axis check, block
// collision, node activation, line growth, then the win check, so a single
// sample can never both collide and score.
func (g *Game) advanceLine(moves []Point) {
	st := g.stage
	if st == nil || len(st.Nodes) == 0 {
		return
	}
	for _, p := range moves {
		// Every sample is checked twice: once as drawn and once reflected
		// through the canvas center, so one gesture covers both fields.
		mx := g.cfg.Width - p.X
		my := g.cfg.Height - p.Y

		// Drawing is only allowed in the upper field.
		if p.Y > g.cfg.Height/2 {
			g.resetLine(ResetCrossedAxis)
			continue
		}

		if g.hitsBlock(p.X, p.Y) || g.hitsBlock(mx, my) {
			g.resetLine(ResetBlocked)
			continue
		}

		for i := range st.Nodes {
			if g.active[i] {
				continue
			}
			n := st.Nodes[i]
			if n.Contains(p.X, p.Y) || n.Contains(mx, my) {
				g.active[i] = true
				g.logger.Debugf("[LINE] node %d (%s) activated", i, n.Kind)
				if g.Hooks.NodeActivated != nil {
					g.Hooks.NodeActivated(n.Kind)
				}
			}
		}

		// The line only grows once the start node has been touched.
		if len(g.line) > 0 || (st.StartIndex >= 0 && g.active[st.StartIndex]) {
			g.line = append(g.line, p)
		}

		if st.EndIndex >= 0 && g.active[st.EndIndex] {
			if g.activeCount() == len(st.Nodes) {
				g.advanceStage()
				return
			}
			// End reached with a connect node missed: retrace from start.
			g.resetLine(ResetMissedNode)
		}
	}
}

func (g *Game) hitsBlock(x, y float64) bool {
	for _, b := range g.stage.Blocks {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

func (g *Game) activeCount() int {
	count := 0
	for _, a := range g.active {
		if a {
			count++
		}
	}
	return count
}

// resetLine clears the current attempt: points and the active-node set.
// It is a no-op when there is nothing to clear, so the per-tick
// pointer-released reset doesn't spam hooks.
func (g *Game) resetLine(reason ResetReason) {
	if len(g.line) == 0 && g.activeCount() == 0 {
		return
	}
	g.line = g.line[:0]
	for i := range g.active {
		g.active[i] = false
	}
	g.logger.Debugf("[LINE] reset (reason %d)", reason)
	if g.Hooks.LineReset != nil {
		g.Hooks.LineReset(reason)
	}
}
