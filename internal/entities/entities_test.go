package entities

import "testing"

func TestCommandDelta(t *testing.T) {
	tests := []struct {
		name      string
		cmd       Command
		wantDelta int
		wantSide  Side
		wantOK    bool
	}{
		{name: "none", cmd: CmdNone, wantDelta: 0, wantSide: Left, wantOK: false},
		{name: "p1 up", cmd: CmdP1Up, wantDelta: -1, wantSide: Left, wantOK: true},
		{name: "p1 down", cmd: CmdP1Down, wantDelta: 1, wantSide: Left, wantOK: true},
		{name: "p2 up", cmd: CmdP2Up, wantDelta: -1, wantSide: Right, wantOK: true},
		{name: "p2 down", cmd: CmdP2Down, wantDelta: 1, wantSide: Right, wantOK: true},
		{name: "unknown", cmd: Command(42), wantDelta: 0, wantSide: Left, wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if d := tc.cmd.Delta(); d != tc.wantDelta {
				t.Fatalf("Delta() = %d, want %d", d, tc.wantDelta)
			}
			side, ok := tc.cmd.Side()
			if ok != tc.wantOK || (ok && side != tc.wantSide) {
				t.Fatalf("Side() = (%v,%v), want (%v,%v)", side, ok, tc.wantSide, tc.wantOK)
			}
		})
	}
}

func TestPaddleMoveClamps(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		dir   int
		want  float64
	}{
		{name: "up at top", start: 0, dir: -1, want: 0},
		{name: "up near top", start: 10, dir: -1, want: 0},
		{name: "up free", start: 150, dir: -1, want: 130},
		{name: "down free", start: 150, dir: 1, want: 170},
		{name: "down near bottom", start: 290, dir: 1, want: 300},
		{name: "down at bottom", start: 300, dir: 1, want: 300},
		{name: "no direction", start: 77, dir: 0, want: 77},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{Y: tc.start, Width: 15, Height: 100}
			p.Move(tc.dir, 20, 400)
			if p.Y != tc.want {
				t.Fatalf("Move from %v dir %d: got %v want %v", tc.start, tc.dir, p.Y, tc.want)
			}
		})
	}
}

func TestPaddleSpansIsOpen(t *testing.T) {
	p := Paddle{Y: 100, Height: 100}
	if p.Spans(100) || p.Spans(200) {
		t.Fatalf("span edges must be excluded")
	}
	if !p.Spans(100.5) || !p.Spans(199.5) {
		t.Fatalf("interior points must be inside the span")
	}
}

func TestBallAdvanceAndReset(t *testing.T) {
	b := Ball{X: 300, Y: 200, VX: 3.5, VY: -3.5, Radius: 10}
	b.Advance()
	if b.X != 303.5 || b.Y != 196.5 {
		t.Fatalf("Advance: got (%v,%v)", b.X, b.Y)
	}
	if b.Left() != 293.5 || b.Right() != 313.5 || b.Top() != 186.5 || b.Bottom() != 206.5 {
		t.Fatalf("edges wrong: %v %v %v %v", b.Left(), b.Right(), b.Top(), b.Bottom())
	}
	b.Reset(300, 200, 3.5, 3.5)
	if b.X != 300 || b.Y != 200 || b.VX != 3.5 || b.VY != 3.5 {
		t.Fatalf("Reset: got %+v", b)
	}
}
