package pong

// Events is the set of things that happened during one Tick.
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventScoreLeft  // the left player scored
	EventScoreRight // the right player scored
	EventGameOver
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

func (e Events) Scored() bool {
	return e.Has(EventScoreLeft) || e.Has(EventScoreRight)
}
