package script

// View is the slice of live game state visible to message conditions.
type View interface {
	StageScore() int
	TotalScore() int
	Replies() int
}

// Message is one entry of a stage's narrative script. Cond, Delay and
// AwaitReply are all optional; the zero value shows Content immediately.
type Message struct {
	Content    string
	Cond       func(View) bool
	Delay      int // ticks to wait before showing
	AwaitReply bool
}

type Script []Message

// Scheduler walks a per-stage script one tick at a time. Narrative pacing is
// driven by per-message delays; reply confirmation is driven by how long the
// player holds the reply control, so stages can mix automatic and
// interactive beats.
type Scheduler struct {
	script    Script
	cursor    int
	wait      int
	replyWait int
	replied   bool
	replies   int
	threshold int // consecutive held ticks needed to confirm a reply
}

func NewScheduler(replyThreshold int) *Scheduler {
	return &Scheduler{threshold: replyThreshold}
}

// SetScript installs a stage's script and resets all cursor state. A nil
// script makes every Tick a no-op.
func (s *Scheduler) SetScript(sc Script) {
	s.script = sc
	s.cursor = 0
	s.wait = 0
	s.replyWait = 0
	s.replied = false
}

// Replies returns how many reply-awaiting messages have been confirmed.
func (s *Scheduler) Replies() int { return s.replies }

// Done reports whether every entry has been shown or skipped.
func (s *Scheduler) Done() bool { return s.cursor >= len(s.script) }

// Tick advances the script by one frame. It returns the message content to
// display this frame, if any; each entry is emitted at most once.
func (s *Scheduler) Tick(v View, replyHeld bool) (string, bool) {
	if s.cursor >= len(s.script) {
		return "", false
	}

	cur := s.script[s.cursor]
	if cur.Cond != nil && !cur.Cond(v) {
		s.cursor++
		return "", false
	}

	if s.cursor > 0 {
		prev := s.script[s.cursor-1]
		if prev.AwaitReply && !s.replied {
			if replyHeld {
				s.replyWait++
				if s.replyWait > s.threshold {
					s.replied = true
					s.replies++
				}
			} else {
				// Releasing the control discards partial hold progress.
				s.replyWait = 0
			}
		}
	}

	if cur.Delay == 0 || s.wait >= cur.Delay {
		s.wait = 0
		s.cursor++
		s.replied = false
		s.replyWait = 0
		return cur.Content, true
	}
	s.wait++
	return "", false
}
