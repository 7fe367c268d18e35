package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/typewriter"
)

var (
	prefixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6d3d1"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Blink(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#78716c")).
			Italic(true)
)

type snapshotMsg typewriter.Snapshot

type doneMsg struct{}

// model renders engine snapshots. The engine owns all timing; the model
// only draws what it is sent.
type model struct {
	engine   *typewriter.Engine
	words    int
	snapshot typewriter.Snapshot
	finished bool
}

func newModel(engine *typewriter.Engine, words int) model {
	return model{engine: engine, words: words, snapshot: engine.Snapshot()}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			m.engine.Start()
			return nil
		},
		func() tea.Msg {
			<-m.engine.Done()
			return doneMsg{}
		},
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = typewriter.Snapshot(msg)
	case doneMsg:
		m.finished = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.engine.Stop()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(prefixStyle.Render("I'm a "))
	b.WriteString(wordStyle.Render(m.snapshot.Text))
	if !m.finished {
		b.WriteString(cursorStyle.Render("▌"))
	}
	b.WriteString("\n\n  ")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	return b.String()
}

func (m model) status() string {
	if m.words == 0 {
		return "no words to type · q to quit"
	}
	if m.finished {
		return "done · q to quit"
	}
	return fmt.Sprintf("%s · word %d/%d · q to quit", m.snapshot.Phase, m.snapshot.WordIndex+1, m.words)
}
