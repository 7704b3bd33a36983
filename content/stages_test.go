package content

import (
	"io"
	"testing"

	"github.com/loganfranken/line/core/game"
	"github.com/loganfranken/line/core/stage"
	game_log "github.com/loganfranken/line/internal/log"
)

type fixedView struct {
	stageScore, total, replies int
}

func (v fixedView) StageScore() int { return v.stageScore }
func (v fixedView) TotalScore() int { return v.total }
func (v fixedView) Replies() int    { return v.replies }

func TestShippedStagesParse(t *testing.T) {
	logger := game_log.New(io.Discard, game_log.LevelSilent)
	stages := Stages()
	if len(stages) == 0 {
		t.Fatalf("no stages shipped")
	}
	for i, data := range stages {
		st, err := stage.Parse(data.Layout, game.DefaultWidth, game.DefaultHeight, logger)
		if err != nil {
			t.Fatalf("stage %d layout %q: %v", i, data.Layout, err)
		}
		if st.StartIndex < 0 || st.EndIndex < 0 {
			t.Fatalf("stage %d missing start or end node", i)
		}
	}
}

func TestShippedConditionsAreCallable(t *testing.T) {
	for i, data := range Stages() {
		for j, msg := range data.Script {
			if msg.Content == "" {
				t.Fatalf("stage %d message %d has no content", i, j)
			}
			if msg.Cond != nil {
				// Conditions must be pure predicates over the view.
				msg.Cond(fixedView{})
				msg.Cond(fixedView{stageScore: 500, total: 9999, replies: 3})
			}
		}
	}
}
