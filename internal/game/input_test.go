package game

import (
	"testing"

	"pong/internal/entities"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// fakeKeys reports fixed press durations; a duration of 1 is a fresh press.
type fakeKeys map[ebiten.Key]int

func (f fakeKeys) PressDuration(key ebiten.Key) int { return f[key] }
func (f fakeKeys) JustPressed(key ebiten.Key) bool  { return f[key] == 1 }

func TestRepeating(t *testing.T) {
	tests := []struct {
		d    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
		{36, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, repeating(tc.d), "duration %d", tc.d)
	}
}

func TestPaddleCommandsMapping(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want []entities.Command
	}{
		{name: "nothing", keys: fakeKeys{}, want: nil},
		{name: "w", keys: fakeKeys{ebiten.KeyW: 1}, want: []entities.Command{entities.CmdP1Up}},
		{name: "s", keys: fakeKeys{ebiten.KeyS: 1}, want: []entities.Command{entities.CmdP1Down}},
		{name: "up", keys: fakeKeys{ebiten.KeyArrowUp: 1}, want: []entities.Command{entities.CmdP2Up}},
		{name: "down", keys: fakeKeys{ebiten.KeyArrowDown: 1}, want: []entities.Command{entities.CmdP2Down}},
		{name: "both players", keys: fakeKeys{ebiten.KeyW: 1, ebiten.KeyArrowDown: 30},
			want: []entities.Command{entities.CmdP1Up, entities.CmdP2Down}},
		{name: "held between repeats", keys: fakeKeys{ebiten.KeyW: 5}, want: nil},
		{name: "other keys ignored", keys: fakeKeys{ebiten.KeyA: 1, ebiten.KeyEnter: 1}, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, paddleCommands(tc.keys))
		})
	}
}
