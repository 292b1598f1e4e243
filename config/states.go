package config

// Lifecycle is the alive → dying → dead progression shared by the player and
// every enemy.
type Lifecycle int

const (
	Alive Lifecycle = iota
	Dying
	Dead
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// CanAdvanceTo reports whether next is the single legal successor of l.
func (l Lifecycle) CanAdvanceTo(next Lifecycle) bool {
	return (l == Alive && next == Dying) || (l == Dying && next == Dead)
}

// GameStateID is the match-level outcome flag.
type GameStateID int

const (
	GamePlaying GameStateID = iota
	GameWon
	GameLost
)

func (s GameStateID) String() string {
	switch s {
	case GamePlaying:
		return "playing"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the run is over.
func (s GameStateID) Terminal() bool {
	return s == GameWon || s == GameLost
}
