package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/loganfranken/line/core/game"
	"github.com/loganfranken/line/core/stage"
)

// Renderer implements game.Renderer on an ebiten image.
type Renderer struct {
	dst  *ebiten.Image
	w, h float32
}

func NewRenderer(dst *ebiten.Image, w, h float64) *Renderer {
	return &Renderer{dst: dst, w: float32(w), h: float32(h)}
}

// Clear paints the two field backgrounds and the reflection axis.
func (r *Renderer) Clear() {
	vector.DrawFilledRect(r.dst, 0, 0, r.w, r.h/2, colFieldTop, false)
	vector.DrawFilledRect(r.dst, 0, r.h/2, r.w, r.h/2, colFieldBottom, false)
	vector.StrokeLine(r.dst, 0, r.h/2, r.w, r.h/2, 1, colAxis, false)
}

func (r *Renderer) DrawNode(n stage.Node, active bool) {
	var col color.RGBA
	switch n.Kind {
	case stage.NodeStart:
		col = colStartNode
	case stage.NodeEnd:
		col = colEndNode
	default:
		col = colConnectNode
	}
	x, y, rad := float32(n.X), float32(n.Y), float32(n.Radius)
	if active {
		vector.DrawFilledCircle(r.dst, x, y, rad, colNodeActive, true)
	}
	vector.StrokeCircle(r.dst, x, y, rad, 2, col, true)
}

func (r *Renderer) DrawBlock(b stage.Block) {
	vector.DrawFilledRect(r.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colBlock, false)
}

func (r *Renderer) DrawLine(points []game.Point, mirrored bool) {
	col := colLine
	if mirrored {
		col = colLineMirror
	}
	for i := 1; i < len(points); i++ {
		x1, y1 := float32(points[i-1].X), float32(points[i-1].Y)
		x2, y2 := float32(points[i].X), float32(points[i].Y)
		if mirrored {
			x1, y1 = r.w-x1, r.h-y1
			x2, y2 = r.w-x2, r.h-y2
		}
		vector.StrokeLine(r.dst, x1, y1, x2, y2, 3, col, true)
	}
}

func (r *Renderer) DrawText(s string, x, y float64) {
	text.Draw(r.dst, s, basicfont.Face7x13, int(x), int(y), colText)
}

// DrawFullScreenMessage dims the whole canvas and centers the text, one line
// per '\n'.
func (r *Renderer) DrawFullScreenMessage(s string) {
	vector.DrawFilledRect(r.dst, 0, 0, r.w, r.h, colOverlay, false)
	lines := strings.Split(s, "\n")
	const lineH = 16
	top := int(r.h)/2 - lineH*len(lines)/2
	for i, line := range lines {
		// Face7x13 glyphs are 7px wide; good enough for centering.
		x := (int(r.w) - 7*len(line)) / 2
		text.Draw(r.dst, line, basicfont.Face7x13, x, top+i*lineH, colText)
	}
}
