// Package tui runs a match in the terminal with bubbletea.
package tui

import (
	"log"
	"time"

	"pong/internal/entities"
	"pong/internal/pong"
	"pong/internal/results"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultCols = 80
	defaultRows = 24
)

var keyCommands = map[string]entities.Command{
	"w":    entities.CmdP1Up,
	"s":    entities.CmdP1Down,
	"up":   entities.CmdP2Up,
	"down": entities.CmdP2Down,
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Options struct {
	RecordResults bool
}

// Model is the bubbletea model for one match. bubbletea delivers ticks and
// key presses to Update one at a time, so the loop needs no locking.
type Model struct {
	loop          *pong.Loop
	renderer      *textRenderer
	recordResults bool
	quitting      bool
}

func New(cfg pong.Config, opts Options) (*Model, error) {
	loop, err := pong.New(cfg)
	if err != nil {
		return nil, err
	}
	m := &Model{
		loop:          loop,
		renderer:      newTextRenderer(defaultCols, defaultRows),
		recordResults: opts.RecordResults,
	}
	m.loadWins()
	return m, nil
}

// loadWins shows each player's recorded wins next to the score.
func (m *Model) loadWins() {
	if !m.recordResults {
		return
	}
	cfg := m.loop.Config()
	m.renderer.showWins = true
	m.renderer.wins = [2]int{results.Wins(cfg.Player1Name), results.Wins(cfg.Player2Name)}
}

// Winner is the winning player's name, empty if the match was quit early.
func (m *Model) Winner() string {
	return m.loop.WinnerName()
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.loop.Config().TickInterval())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, ok := keyCommands[msg.String()]; ok {
			m.loop.HandleInput(cmd)
		}
	case tea.WindowSizeMsg:
		m.renderer.resize(msg.Width, msg.Height)
	case TickMsg:
		ev := m.loop.Tick()
		if ev.Has(pong.EventGameOver) {
			m.saveResult()
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.loop.Config().TickInterval())
	}
	return m, nil
}

func (m *Model) saveResult() {
	if !m.recordResults {
		return
	}
	if err := results.Save(results.FromSnapshot(m.loop.Snapshot(), time.Now().UTC())); err != nil {
		log.Printf("pong: saving result: %v", err)
	}
	m.loadWins()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.loop.Render(m.renderer)
	return m.renderer.String()
}
