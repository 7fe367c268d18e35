// Package typewriter cycles a display string through typing, holding
// and deleting each word of a fixed list, the way the hero banner
// spells out the owner's roles.
//
// The phase is never stored. It is derived from the visible text, the
// current word and the deleting flag by PhaseOf, and Next applies one
// tick's worth of change to a State. Engine wraps both behind a
// cancellable timer.
package typewriter

import "time"

// Phase is the derived state of the animation.
type Phase string

const (
	Typing   Phase = "typing"
	Deleting Phase = "deleting"
	Waiting  Phase = "waiting"
)

const (
	DefaultTypeSpeed   = 50 * time.Millisecond
	DefaultDeleteSpeed = 30 * time.Millisecond
	DefaultDelaySpeed  = 2000 * time.Millisecond
)

// Config controls one engine. Words is copied on use and stays fixed
// until the next Reconfigure.
type Config struct {
	Words       []string
	Loop        bool
	TypeSpeed   time.Duration
	DeleteSpeed time.Duration
	DelaySpeed  time.Duration
}

// DefaultConfig returns a looping config with the default speeds.
func DefaultConfig(words ...string) Config {
	return Config{
		Words:       words,
		Loop:        true,
		TypeSpeed:   DefaultTypeSpeed,
		DeleteSpeed: DefaultDeleteSpeed,
		DelaySpeed:  DefaultDelaySpeed,
	}
}

func (c Config) normalized() Config {
	c.Words = append([]string(nil), c.Words...)
	if c.TypeSpeed <= 0 {
		c.TypeSpeed = DefaultTypeSpeed
	}
	if c.DeleteSpeed <= 0 {
		c.DeleteSpeed = DefaultDeleteSpeed
	}
	if c.DelaySpeed <= 0 {
		c.DelaySpeed = DefaultDelaySpeed
	}
	return c
}

// Timeout is how long the engine waits in phase p before the next tick.
func (c Config) Timeout(p Phase) time.Duration {
	switch p {
	case Deleting:
		return c.DeleteSpeed
	case Waiting:
		return c.DelaySpeed
	default:
		return c.TypeSpeed
	}
}

// State is the mutable part of an engine. Text is always a rune prefix
// of Words[WordIndex].
type State struct {
	Text      string
	WordIndex int
	Deleting  bool
}

// PhaseOf derives the phase from the visible text.
func PhaseOf(text, word string, deleting bool) Phase {
	switch {
	case text == word && !deleting:
		return Waiting
	case deleting:
		return Deleting
	default:
		return Typing
	}
}

// Word returns the word s is showing, or "" for an empty list.
func (s State) Word(words []string) string {
	if s.WordIndex < 0 || s.WordIndex >= len(words) {
		return ""
	}
	return words[s.WordIndex]
}

// Phase derives s's phase against words.
func (s State) Phase(words []string) Phase {
	return PhaseOf(s.Text, s.Word(words), s.Deleting)
}

// Terminal reports whether no further tick applies to s. That is the
// case for an empty list, and for a non-looping list once its last word
// is fully typed.
func Terminal(words []string, s State, loop bool) bool {
	if len(words) == 0 {
		return true
	}
	if loop {
		return false
	}
	last := s.WordIndex == len(words)-1
	switch s.Phase(words) {
	case Waiting:
		return last
	case Deleting:
		return last && s.Text == ""
	}
	return false
}

// Next applies one tick to s. The second result is false when s is
// terminal, in which case s is returned unchanged.
//
// Reaching the full word flips to deleting without touching the text,
// and an emptied word advances to the next one instead of deleting
// further. A non-looping list advances through its words once and
// stops on the last one.
func Next(words []string, s State, loop bool) (State, bool) {
	if Terminal(words, s, loop) {
		return s, false
	}
	word := s.Word(words)
	switch s.Phase(words) {
	case Waiting:
		s.Deleting = true
	case Deleting:
		if s.Text == "" {
			s.Deleting = false
			s.WordIndex = (s.WordIndex + 1) % len(words)
			break
		}
		r := []rune(s.Text)
		s.Text = string(r[:len(r)-1])
	case Typing:
		r := []rune(word)
		n := len([]rune(s.Text)) + 1
		if n > len(r) {
			n = len(r)
		}
		s.Text = string(r[:n])
	}
	return s, true
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Text      string `json:"displayText"`
	Completed bool   `json:"isCompleted"`
	Phase     Phase  `json:"currentState"`
	WordIndex int    `json:"wordIndex"`
}

// SnapshotOf builds the renderer view of s.
func SnapshotOf(words []string, s State) Snapshot {
	word := s.Word(words)
	return Snapshot{
		Text:      s.Text,
		Completed: s.Text == word && !s.Deleting,
		Phase:     PhaseOf(s.Text, word, s.Deleting),
		WordIndex: s.WordIndex,
	}
}
