// Package content holds the shipped stage layouts and message scripts. It is
// static configuration: the core consumes it and never mutates it.
package content

import (
	"github.com/loganfranken/line/core/game"
	"github.com/loganfranken/line/core/script"
)

// Stages returns the level set in play order. Layouts use the S/E/C/B
// descriptor format with positions as percentages of the canvas; node and
// block positions past the 50% line are reachable only through the mirrored
// half of the drawn line.
func Stages() []game.StageData {
	return []game.StageData{
		{
			Layout: "S(10,25);E(90,25)",
			Script: script.Script{
				{Content: "draw a line between the circles", Delay: game.TicksPerSecond},
				{Content: "your line is mirrored below", Delay: 4 * game.TicksPerSecond},
			},
		},
		{
			Layout: "S(10,25);C(50,25);E(90,25)",
			Script: script.Script{
				{Content: "touch every circle before the last one", Delay: game.TicksPerSecond},
			},
		},
		{
			Layout: "S(10,25);C(50,75);E(90,25)",
			Script: script.Script{
				{Content: "some circles live in the reflection", Delay: game.TicksPerSecond},
				{Content: "hold X if you understand", Delay: 4 * game.TicksPerSecond, AwaitReply: true},
				{
					Content: "good",
					Delay:   2 * game.TicksPerSecond,
					Cond:    func(v script.View) bool { return v.Replies() > 0 },
				},
			},
		},
		{
			Layout: "S(10,40);B(45,15,10,20);C(50,8);E(90,40)",
			Script: script.Script{
				{Content: "walls end your line", Delay: game.TicksPerSecond},
			},
		},
		{
			Layout: "S(10,25);C(50,62);B(28,55,14,22);E(90,25)",
			Script: script.Script{
				{Content: "walls cut the reflection too", Delay: game.TicksPerSecond},
			},
		},
		{
			Layout: "S(5,50);C(25,15);C(70,80);E(95,50)",
			Script: script.Script{
				{Content: "the last one", Delay: game.TicksPerSecond},
				{
					Content: "and you kept your score high",
					Delay:   3 * game.TicksPerSecond,
					Cond:    func(v script.View) bool { return v.TotalScore() > 3*game.StageScoreMax/2 },
				},
			},
		},
	}
}
