package stage

import (
	"fmt"
	"strconv"
	"strings"

	game_log "github.com/loganfranken/line/internal/log"
)

// NodeRadius is the hit radius, in canvas px, shared by every node.
const NodeRadius = 14

type NodeKind int

const (
	NodeStart NodeKind = iota
	NodeEnd
	NodeConnect
)

func (k NodeKind) String() string {
	switch k {
	case NodeStart:
		return "start"
	case NodeEnd:
		return "end"
	case NodeConnect:
		return "connect"
	default:
		return "unknown"
	}
}

// Node is a circular target the drawn line must touch.
type Node struct {
	Kind   NodeKind
	X, Y   float64
	Radius float64
}

// Contains reports whether (px, py) lies within the node's radius.
func (n Node) Contains(px, py float64) bool {
	dx := px - n.X
	dy := py - n.Y
	return dx*dx+dy*dy <= n.Radius*n.Radius
}

// Block is a rectangular obstacle that resets the line on contact.
type Block struct {
	X, Y float64
	W, H float64
}

// Contains reports whether (px, py) lies within the block's rectangle.
func (b Block) Contains(px, py float64) bool {
	return px >= b.X && px <= b.X+b.W && py >= b.Y && py <= b.Y+b.H
}

// Stage holds the entities of one level. StartIndex and EndIndex locate the
// start and end nodes in Nodes; both are -1 when the stage is empty.
type Stage struct {
	Nodes      []Node
	Blocks     []Block
	StartIndex int
	EndIndex   int
}

// Empty returns a stage with no entities, used when no descriptor exists for
// a requested index.
func Empty() *Stage {
	return &Stage{StartIndex: -1, EndIndex: -1}
}

// Parse turns a layout descriptor into a Stage sized to a w x h canvas.
//
// Records are separated by ';'. Each record is Kind(px,py) for nodes or
// Kind(px,py,pw,ph) for blocks, with kind codes S, E, C and B and values as
// integer percentages of the canvas dimensions. Malformed records are skipped
// with a logged diagnostic and unknown kinds are ignored; only structural
// violations (not exactly one start and one end node) produce an error.
func Parse(desc string, w, h float64, logger *game_log.Logger) (*Stage, error) {
	st := Empty()

	for _, rec := range strings.Split(desc, ";") {
		rec = strings.TrimSpace(rec)
		if rec == "" {
			continue
		}
		tokens := splitRecord(rec)
		if len(tokens) == 0 {
			continue
		}
		switch tokens[0] {
		case "S", "E", "C":
			vals, ok := percentages(tokens, 2, w, h, logger)
			if !ok {
				continue
			}
			kind := NodeConnect
			switch tokens[0] {
			case "S":
				kind = NodeStart
			case "E":
				kind = NodeEnd
			}
			if kind == NodeStart {
				st.StartIndex = len(st.Nodes)
			}
			if kind == NodeEnd {
				st.EndIndex = len(st.Nodes)
			}
			st.Nodes = append(st.Nodes, Node{Kind: kind, X: vals[0], Y: vals[1], Radius: NodeRadius})
		case "B":
			vals, ok := percentages(tokens, 4, w, h, logger)
			if !ok {
				continue
			}
			st.Blocks = append(st.Blocks, Block{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]})
		default:
			logger.Warnf("[STAGE] unknown record kind %q in %q, ignored", tokens[0], rec)
		}
	}

	if err := st.validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// splitRecord tokenizes one record on ',', '(' and ')'.
func splitRecord(rec string) []string {
	fields := strings.FieldsFunc(rec, func(r rune) bool {
		return r == ',' || r == '(' || r == ')'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// percentages decodes n percentage tokens after the kind code, scaling x-axis
// values by w and y-axis values by h (tokens alternate x, y, x, y ...).
func percentages(tokens []string, n int, w, h float64, logger *game_log.Logger) ([]float64, bool) {
	if len(tokens) != n+1 {
		logger.Warnf("[STAGE] record %v: want %d values, got %d, skipped", tokens, n, len(tokens)-1)
		return nil, false
	}
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		pct, err := strconv.Atoi(tokens[i+1])
		if err != nil || pct < 0 || pct > 100 {
			logger.Warnf("[STAGE] record %v: bad percentage %q, skipped", tokens, tokens[i+1])
			return nil, false
		}
		dim := w
		if i%2 == 1 {
			dim = h
		}
		vals[i] = float64(pct) / 100 * dim
	}
	return vals, true
}

// validate enforces the one-start one-end invariant.
func (st *Stage) validate() error {
	var starts, ends int
	for _, n := range st.Nodes {
		switch n.Kind {
		case NodeStart:
			starts++
		case NodeEnd:
			ends++
		}
	}
	if starts != 1 || ends != 1 {
		return fmt.Errorf("stage needs exactly one start and one end node, got %d and %d", starts, ends)
	}
	return nil
}
