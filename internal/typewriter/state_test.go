package typewriter

import (
	"testing"
	"time"
)

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		word     string
		deleting bool
		want     Phase
	}{
		{"empty start", "", "Go", false, Typing},
		{"partial", "G", "Go", false, Typing},
		{"full word", "Go", "Go", false, Waiting},
		{"full word deleting", "Go", "Go", true, Deleting},
		{"partial deleting", "G", "Go", true, Deleting},
		{"empty deleting", "", "Go", true, Deleting},
		{"empty word", "", "", false, Waiting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PhaseOf(tt.text, tt.word, tt.deleting); got != tt.want {
				t.Errorf("PhaseOf(%q, %q, %v) = %s, want %s", tt.text, tt.word, tt.deleting, got, tt.want)
			}
		})
	}
}

func TestConfigTimeout(t *testing.T) {
	cfg := Config{TypeSpeed: 1, DeleteSpeed: 2, DelaySpeed: 3}
	if cfg.Timeout(Typing) != 1 || cfg.Timeout(Deleting) != 2 || cfg.Timeout(Waiting) != 3 {
		t.Errorf("Timeout mapping wrong: %v %v %v", cfg.Timeout(Typing), cfg.Timeout(Deleting), cfg.Timeout(Waiting))
	}
}

func TestNormalizedFillsDefaults(t *testing.T) {
	cfg := Config{Words: []string{"a"}, TypeSpeed: -1}.normalized()
	if cfg.TypeSpeed != DefaultTypeSpeed || cfg.DeleteSpeed != DefaultDeleteSpeed || cfg.DelaySpeed != DefaultDelaySpeed {
		t.Errorf("normalized() = %+v", cfg)
	}
	d := DefaultConfig("x")
	if !d.Loop || d.TypeSpeed != 50*time.Millisecond || d.DeleteSpeed != 30*time.Millisecond || d.DelaySpeed != 2*time.Second {
		t.Errorf("DefaultConfig() = %+v", d)
	}
}

func TestNextTypingGrowsByOneRune(t *testing.T) {
	words := []string{"Rust"}
	s := State{}
	for i := 1; i <= 4; i++ {
		var ok bool
		s, ok = Next(words, s, true)
		if !ok {
			t.Fatalf("tick %d: Next reported terminal", i)
		}
		if got := len([]rune(s.Text)); got != i {
			t.Fatalf("tick %d: len(text) = %d, want %d", i, got, i)
		}
	}
	if s.Phase(words) != Waiting {
		t.Errorf("phase after typing = %s, want waiting", s.Phase(words))
	}
}

func TestNextWaitingFlipsWithoutTouchingText(t *testing.T) {
	words := []string{"Go"}
	s, ok := Next(words, State{Text: "Go"}, true)
	if !ok || !s.Deleting || s.Text != "Go" {
		t.Errorf("Next(waiting) = %+v, %v", s, ok)
	}
}

func TestNextDeletingShrinksThenAdvances(t *testing.T) {
	words := []string{"Go", "Rust"}
	s := State{Text: "Go", Deleting: true}
	s, _ = Next(words, s, true)
	if s.Text != "G" {
		t.Fatalf("text = %q, want G", s.Text)
	}
	s, _ = Next(words, s, true)
	if s.Text != "" || !s.Deleting {
		t.Fatalf("state = %+v, want empty and deleting", s)
	}
	s, _ = Next(words, s, true)
	if s.Deleting || s.WordIndex != 1 || s.Text != "" {
		t.Errorf("state = %+v, want advanced to word 1", s)
	}
}

func TestNextMultiByteWords(t *testing.T) {
	words := []string{"héllo✓"}
	s := State{}
	for i := 0; i < 6; i++ {
		s, _ = Next(words, s, true)
	}
	if s.Text != "héllo✓" {
		t.Errorf("text = %q", s.Text)
	}
	s, _ = Next(words, s, true)
	s, _ = Next(words, s, true)
	if s.Text != "héllo" {
		t.Errorf("text after one delete = %q", s.Text)
	}
}

func TestNextWrapsAfterFullCycles(t *testing.T) {
	words := []string{"a", "bc", "def"}
	s := State{}
	cycles := 0
	for i := 0; i < 1000 && cycles < len(words); i++ {
		before := s.WordIndex
		s, _ = Next(words, s, true)
		if s.WordIndex != before {
			cycles++
		}
	}
	if cycles != len(words) || s.WordIndex != 0 {
		t.Errorf("after %d cycles WordIndex = %d, want 0", cycles, s.WordIndex)
	}
}

func TestNextEmptyListIsTerminal(t *testing.T) {
	s, ok := Next(nil, State{}, true)
	if ok || s != (State{}) {
		t.Errorf("Next(nil) = %+v, %v", s, ok)
	}
	snap := SnapshotOf(nil, State{})
	if snap.Text != "" || !snap.Completed || snap.Phase != Waiting {
		t.Errorf("SnapshotOf(nil) = %+v", snap)
	}
}

func TestNextNonLoopingStopsOnLastWord(t *testing.T) {
	words := []string{"a", "b"}
	s := State{}
	ticks := 0
	for {
		next, ok := Next(words, s, false)
		if !ok {
			break
		}
		s = next
		ticks++
		if ticks > 100 {
			t.Fatal("non-looping list never stopped")
		}
	}
	// type a, flip, delete, advance, type b
	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
	if s.WordIndex != 1 || s.Text != "b" || s.Deleting {
		t.Errorf("final state = %+v", s)
	}
}

func TestTerminal(t *testing.T) {
	words := []string{"a", "b"}
	tests := []struct {
		name string
		s    State
		loop bool
		want bool
	}{
		{"looping never", State{WordIndex: 1, Text: "b"}, true, false},
		{"first word waiting", State{Text: "a"}, false, false},
		{"last word typing", State{WordIndex: 1}, false, false},
		{"last word waiting", State{WordIndex: 1, Text: "b"}, false, true},
		{"last word emptied", State{WordIndex: 1, Deleting: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Terminal(words, tt.s, tt.loop); got != tt.want {
				t.Errorf("Terminal(%+v, %v) = %v, want %v", tt.s, tt.loop, got, tt.want)
			}
		})
	}
}
