package tui

import (
	"strings"
	"testing"
	"time"

	"pong/internal/cellgrid"
	"pong/internal/entities"
	"pong/internal/pong"
	"pong/internal/results"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := New(pong.DefaultConfig(), opts)
	require.NoError(t, err)
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := pong.DefaultConfig()
	cfg.PaddleStep = 0
	_, err := New(cfg, Options{})
	assert.ErrorIs(t, err, pong.ErrInvalidConfig)
}

func TestKeysDrivePaddles(t *testing.T) {
	m := newModel(t, Options{})
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'w'}},
		{Type: tea.KeyRunes, Runes: []rune{'s'}},
		{Type: tea.KeyRunes, Runes: []rune{'s'}},
		{Type: tea.KeyUp},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
	}
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		assert.Nil(t, cmd)
	}
	s := m.loop.Snapshot()
	assert.Equal(t, 170.0, s.Paddles[entities.Left].Y)
	assert.Equal(t, 130.0, s.Paddles[entities.Right].Y)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := newModel(t, Options{})
		_, cmd := m.Update(msg)
		assert.True(t, isQuit(cmd), "key %q", msg.String())
		assert.Empty(t, m.Winner())
		assert.Empty(t, m.View())
	}
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m := newModel(t, Options{})
	assert.NotNil(t, m.Init())
	_, cmd := m.Update(TickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 303.5, m.loop.Snapshot().Ball.X)
}

func TestMatchEndsWithQuitAndRecord(t *testing.T) {
	t.Setenv("PONG_CONFIG_DIR", t.TempDir())
	m := newModel(t, Options{RecordResults: true})
	var cmd tea.Cmd
	for i := 0; i < 10000; i++ {
		_, cmd = m.Update(TickMsg(time.Now()))
		if m.loop.IsGameOver() {
			break
		}
	}
	require.True(t, m.loop.IsGameOver())
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "Player 1", m.Winner())

	recs := results.Load()
	require.Len(t, recs, 1)
	assert.Equal(t, "Player 1", recs[0].Winner)
	assert.Equal(t, [2]int{1, 0}, m.renderer.wins)
}

func TestViewShowsRecordedWins(t *testing.T) {
	t.Setenv("PONG_CONFIG_DIR", t.TempDir())
	for _, w := range []string{"Player 2", "player 2", "Player 1"} {
		require.NoError(t, results.Save(&results.Record{Winner: w}))
	}
	m := newModel(t, Options{RecordResults: true})
	view := m.View()
	assert.Contains(t, view, "Player 1: 0 (1 won)")
	assert.Contains(t, view, "Player 2: 0 (2 won)")

	m = newModel(t, Options{})
	assert.NotContains(t, m.View(), "won)")
}

func TestLabelsCenterByRunes(t *testing.T) {
	cfg := pong.DefaultConfig()
	cfg.Player1Name = "Zoë Ørsted"
	m, err := New(cfg, Options{})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m.View()

	// "Zoë Ørsted: 0" is 13 runes (15 bytes); centred on column 20 it starts at 14.
	g := m.renderer.grid
	assert.Equal(t, 'Z', g.At(14, 0).Rune)
	assert.Equal(t, '0', g.At(26, 0).Rune)
	assert.Equal(t, ' ', g.At(27, 0).Rune)
}

func TestViewShowsScoresAndField(t *testing.T) {
	m := newModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 21})
	view := m.View()
	assert.Contains(t, view, "Player 1: 0")
	assert.Contains(t, view, "Player 2: 0")
	assert.Len(t, strings.Split(view, "\n"), 21)

	g := m.renderer.grid
	assert.Equal(t, 60, g.Width)
	// 20 field rows over 400 units: 20 units per row. Paddles span rows 7-12
	// plus the label row offset.
	assert.Equal(t, cellgrid.TileLeftPaddle, g.At(0, 9).Tile)
	assert.Equal(t, cellgrid.TileRightPaddle, g.At(59, 9).Tile)
	assert.Equal(t, cellgrid.TileEmpty, g.At(0, 3).Tile)
	// Ball at (300, 200) -> cell (30, 10) + label row.
	assert.Equal(t, cellgrid.TileBall, g.At(30, 11).Tile)
}

func TestRendererClampsTinyWindows(t *testing.T) {
	r := newTextRenderer(0, 0)
	r.Render(pong.Snapshot{Width: 600, Height: 400})
	assert.Equal(t, 2, r.grid.Width)
	assert.Equal(t, 2, r.grid.Height)
}
