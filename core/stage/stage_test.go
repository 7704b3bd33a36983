package stage

import (
	"io"
	"testing"

	game_log "github.com/loganfranken/line/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelSilent)

func TestParsePositionsFromPercentages(t *testing.T) {
	st, err := Parse("S(10,50);C(50,50);E(90,50)", 200, 100, testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(st.Nodes))
	}
	want := []struct {
		kind NodeKind
		x, y float64
	}{
		{NodeStart, 20, 50},
		{NodeConnect, 100, 50},
		{NodeEnd, 180, 50},
	}
	for i, w := range want {
		n := st.Nodes[i]
		if n.Kind != w.kind || n.X != w.x || n.Y != w.y {
			t.Fatalf("node %d = %+v, want kind %v at (%v,%v)", i, n, w.kind, w.x, w.y)
		}
		if n.Radius != NodeRadius {
			t.Fatalf("node %d radius = %v, want %v", i, n.Radius, float64(NodeRadius))
		}
	}
	if st.StartIndex != 0 || st.EndIndex != 2 {
		t.Fatalf("start/end indices = %d/%d, want 0/2", st.StartIndex, st.EndIndex)
	}
}

func TestParseBlocks(t *testing.T) {
	st, err := Parse("S(10,50);E(90,50);B(25,10,50,30)", 200, 100, testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(st.Blocks))
	}
	b := st.Blocks[0]
	if b.X != 50 || b.Y != 10 || b.W != 100 || b.H != 30 {
		t.Fatalf("block = %+v, want (50,10,100,30)", b)
	}
}

func TestParseIgnoresUnknownKinds(t *testing.T) {
	st, err := Parse("S(10,50);Z(5,5);E(90,50)", 200, 100, testLogger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Nodes) != 2 || len(st.Blocks) != 0 {
		t.Fatalf("got %d nodes and %d blocks, want 2 and 0", len(st.Nodes), len(st.Blocks))
	}
}

func TestParseSkipsMalformedRecords(t *testing.T) {
	cases := []string{
		"S(10,50);C(abc,50);E(90,50)",  // non-numeric
		"S(10,50);C(50);E(90,50)",      // too few values
		"S(10,50);C(50,50,50);E(90,50)", // too many values
		"S(10,50);C(150,50);E(90,50)",  // out of range
		"S(10,50);;E(90,50)",           // empty record
	}
	for _, desc := range cases {
		st, err := Parse(desc, 200, 100, testLogger)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", desc, err)
		}
		if len(st.Nodes) != 2 {
			t.Fatalf("%q: got %d nodes, want 2", desc, len(st.Nodes))
		}
	}
}

func TestParseStructuralViolations(t *testing.T) {
	cases := []string{
		"",
		"C(50,50)",
		"S(10,50);C(50,50)",            // no end
		"E(90,50);C(50,50)",            // no start
		"S(10,50);S(20,50);E(90,50)",   // duplicate start
		"S(10,50);E(80,50);E(90,50)",   // duplicate end
	}
	for _, desc := range cases {
		if _, err := Parse(desc, 200, 100, testLogger); err == nil {
			t.Fatalf("%q: expected structural error", desc)
		}
	}
}

func TestNodeContains(t *testing.T) {
	n := Node{X: 50, Y: 50, Radius: 10}
	if !n.Contains(50, 50) {
		t.Fatalf("center not contained")
	}
	if !n.Contains(60, 50) {
		t.Fatalf("boundary point not contained")
	}
	if n.Contains(61, 50) {
		t.Fatalf("point past radius contained")
	}
	if n.Contains(58, 58) { // distance ~11.3
		t.Fatalf("diagonal point past radius contained")
	}
}

func TestBlockContains(t *testing.T) {
	b := Block{X: 10, Y: 20, W: 30, H: 40}
	for _, p := range [][2]float64{{10, 20}, {40, 60}, {25, 40}} {
		if !b.Contains(p[0], p[1]) {
			t.Fatalf("(%v,%v) not contained", p[0], p[1])
		}
	}
	for _, p := range [][2]float64{{9, 20}, {41, 40}, {25, 61}} {
		if b.Contains(p[0], p[1]) {
			t.Fatalf("(%v,%v) contained", p[0], p[1])
		}
	}
}
