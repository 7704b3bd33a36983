package game

import (
	"fmt"

	"github.com/loganfranken/line/core/script"
	"github.com/loganfranken/line/core/stage"
	game_log "github.com/loganfranken/line/internal/log"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	// TicksPerSecond matches ebiten's fixed update rate.
	TicksPerSecond = 60

	// IntroTicks is the stage-intro countdown length.
	IntroTicks = 3 * TicksPerSecond

	// StageScoreMax is the per-stage score before tick decay.
	StageScoreMax = 1000

	// ReplyTicks is how long the reply control must be held, in consecutive
	// ticks, before a reply counts as given.
	ReplyTicks = 45
)

type State int

const (
	StateStarting State = iota
	StateStartingStage
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateStartingStage:
		return "starting-stage"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ResetReason says why the current line attempt was discarded.
type ResetReason int

const (
	ResetReleased ResetReason = iota
	ResetCrossedAxis
	ResetBlocked
	ResetMissedNode
)

// StageData pairs a layout descriptor with its message script.
type StageData struct {
	Layout string
	Script script.Script
}

type Config struct {
	Width  float64
	Height float64
	Stages []StageData
}

// Hooks are optional observers of gameplay events. Nil fields are skipped.
// The UI layer wires these to sound effects.
type Hooks struct {
	NodeActivated  func(stage.NodeKind)
	LineReset      func(ResetReason)
	MessageShown   func(string)
	ReplyConfirmed func()
	StageAdvanced  func(next int)
}

// Game is the whole gameplay state machine. It owns every piece of mutable
// state and mutates it only inside Update, once per tick; Render is a read
// pass over the result.
type Game struct {
	logger *game_log.Logger
	cfg    Config

	state      State
	stageIdx   int
	introTimer int

	stage  *stage.Stage
	active []bool
	line   []Point

	sched         *script.Scheduler
	pendingMsg    string
	hasPendingMsg bool

	stageScore int
	totalScore int

	Hooks Hooks
}

func New(cfg Config, logger *game_log.Logger) *Game {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	g := &Game{
		logger:     logger,
		cfg:        cfg,
		state:      StateStarting,
		stageScore: StageScoreMax,
		sched:      script.NewScheduler(ReplyTicks),
	}
	g.loadStage(0)
	return g
}

/* ── accessors ── */

func (g *Game) State() State        { return g.state }
func (g *Game) StageIndex() int     { return g.stageIdx }
func (g *Game) Stage() *stage.Stage { return g.stage }
func (g *Game) Line() []Point       { return g.line }

// Finished reports whether play has advanced past the last configured stage.
func (g *Game) Finished() bool { return g.stageIdx >= len(g.cfg.Stages) }

// StageScore, TotalScore and Replies implement script.View so message
// conditions can read live game state.
func (g *Game) StageScore() int { return g.stageScore }
func (g *Game) TotalScore() int { return g.totalScore }
func (g *Game) Replies() int    { return g.sched.Replies() }

// ShareText is the one-line summary offered to the clipboard.
func (g *Game) ShareText() string {
	if g.Finished() {
		return fmt.Sprintf("line: finished all %d stages, total score %d", len(g.cfg.Stages), g.totalScore)
	}
	return fmt.Sprintf("line: stage %d, total score %d", g.stageIdx+1, g.totalScore)
}

/* ── stage loading ── */

// loadStage replaces the stage entities for the given index. A missing or
// unusable descriptor degrades to an empty stage so the loop keeps running.
func (g *Game) loadStage(idx int) {
	g.line = nil
	if idx < 0 || idx >= len(g.cfg.Stages) {
		g.logger.Infof("[GAME] no stage data for index %d", idx)
		g.stage = stage.Empty()
		g.active = nil
		g.sched.SetScript(nil)
		return
	}
	data := g.cfg.Stages[idx]
	st, err := stage.Parse(data.Layout, g.cfg.Width, g.cfg.Height, g.logger)
	if err != nil {
		g.logger.Warnf("[GAME] stage %d layout unusable: %v", idx, err)
		st = stage.Empty()
	}
	g.stage = st
	g.active = make([]bool, len(st.Nodes))
	g.sched.SetScript(data.Script)
	g.logger.Infof("[GAME] loaded stage %d: %d nodes, %d blocks, %d messages",
		idx, len(st.Nodes), len(st.Blocks), len(data.Script))
}

/* ── per-tick update ── */

// Update runs one tick: it drains the input buffer, drives the state
// machine, and in Playing also runs scoring, the message scheduler and the
// line engine.
func (g *Game) Update(in *Input) {
	defer in.Reset()

	if g.state == StateStartingStage {
		g.introTimer--
		if g.introTimer <= 0 {
			g.state = StatePlaying
			g.logger.Infof("[GAME] stage %d live", g.stageIdx)
		}
		return
	}

	if in.Clicked {
		switch g.state {
		case StateStarting:
			g.introTimer = IntroTicks
			g.state = StateStartingStage
			g.logger.Infof("[GAME] starting first stage")
		case StatePaused:
			g.state = StatePlaying
		}
	}
	if in.PauseClicked {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
		g.logger.Debugf("[GAME] pause toggled, now %s", g.state)
	}
	if !in.PointerHeld {
		g.resetLine(ResetReleased)
	}

	if g.state != StatePlaying {
		return
	}

	g.stageScore--

	before := g.sched.Replies()
	if msg, ok := g.sched.Tick(g, in.ReplyHeld); ok {
		g.pendingMsg = msg
		g.hasPendingMsg = true
		g.logger.Debugf("[GAME] message: %q", msg)
		if g.Hooks.MessageShown != nil {
			g.Hooks.MessageShown(msg)
		}
	}
	if g.sched.Replies() > before && g.Hooks.ReplyConfirmed != nil {
		g.Hooks.ReplyConfirmed()
	}

	if in.PointerHeld {
		g.advanceLine(in.Moves)
	}
}

// advanceStage banks the stage score and moves on to the next descriptor.
func (g *Game) advanceStage() {
	g.totalScore += g.stageScore
	next := g.stageIdx + 1
	g.logger.Infof("[GAME] stage %d cleared: score %d, total %d", g.stageIdx, g.stageScore, g.totalScore)
	if g.Hooks.StageAdvanced != nil {
		g.Hooks.StageAdvanced(next)
	}
	g.stageIdx = next
	g.stageScore = StageScoreMax
	g.introTimer = IntroTicks
	g.state = StateStartingStage
	g.loadStage(next)
}
