package entities

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Command is a directional paddle command. Anything outside the four
// named values is ignored by the game loop.
type Command int

const (
	CmdNone Command = iota
	CmdP1Up
	CmdP1Down
	CmdP2Up
	CmdP2Down
)

// Side reports which paddle a command drives. ok is false for CmdNone and
// unknown values.
func (c Command) Side() (side Side, ok bool) {
	switch c {
	case CmdP1Up, CmdP1Down:
		return Left, true
	case CmdP2Up, CmdP2Down:
		return Right, true
	default:
		return Left, false
	}
}

// Delta is -1 for up, 1 for down and 0 otherwise (screen y grows downward).
func (c Command) Delta() int {
	switch c {
	case CmdP1Up, CmdP2Up:
		return -1
	case CmdP1Down, CmdP2Down:
		return 1
	default:
		return 0
	}
}
